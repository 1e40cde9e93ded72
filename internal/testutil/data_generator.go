// Package testutil builds fixtures for the data layer and service tests.
package testutil

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"raceboard/internal/domain"
	"raceboard/internal/domain/entities"
	"raceboard/internal/infrastructure/database/relations"
	"raceboard/pkg/isotime"
)

// DataGenerator provides seeded fixtures. The same seed yields the same
// fixtures.
type DataGenerator struct {
	faker *gofakeit.Faker
	seed  uint64
}

// NewDataGenerator creates a generator with an optional seed.
func NewDataGenerator(seed ...uint64) *DataGenerator {
	var s uint64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = uint64(time.Now().UnixNano())
	}
	return &DataGenerator{faker: gofakeit.New(s), seed: s}
}

func (g *DataGenerator) Seed() uint64 { return g.seed }

func (g *DataGenerator) Faker() *gofakeit.Faker { return g.faker }

// UUID returns a seeded internal key.
func (g *DataGenerator) UUID() uuid.UUID {
	return uuid.MustParse(g.faker.UUID())
}

// PublicKey returns a short URL-safe key shaped like the generated ones.
func (g *DataGenerator) PublicKey() string {
	return g.faker.Regex("[a-zA-Z0-9]{22}")
}

func (g *DataGenerator) Time() time.Time {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	return g.faker.DateRange(start, start.AddDate(5, 0, 0)).UTC()
}

func (g *DataGenerator) Keyed() relations.Keyed {
	public := g.PublicKey()
	return relations.Keyed{ID: g.UUID(), PublicID: &public}
}

// LegacyKeyed has no public key.
func (g *DataGenerator) LegacyKeyed() relations.Keyed {
	return relations.Keyed{ID: g.UUID()}
}

func (g *DataGenerator) Stamps() relations.Stamps {
	created := g.Time()
	updated := created.Add(time.Duration(g.faker.Number(1, 72)) * time.Hour)
	return relations.Stamps{CreatedAt: &created, UpdatedAt: &updated}
}

func (g *DataGenerator) Organization() *relations.Organization {
	return &relations.Organization{
		Keyed:  g.Keyed(),
		Name:   g.faker.Company(),
		State:  string(domain.OrganizationActive),
		Stamps: g.Stamps(),
	}
}

func (g *DataGenerator) Event(org *relations.Organization) *relations.Event {
	when := g.Time()
	city := g.faker.City()
	return &relations.Event{
		Keyed:          g.Keyed(),
		Name:           g.faker.Company() + " Classic",
		DateTime:       when,
		Year:           when.Year(),
		City:           &city,
		Status:         string(domain.EventStatusFinished),
		IsPublic:       true,
		OrganizationID: org.ID,
		Stamps:         g.Stamps(),
		Organization:   org,
	}
}

func (g *DataGenerator) RankingSystem() *relations.RankingSystem {
	return &relations.RankingSystem{Keyed: g.Keyed(), Name: "UCI " + g.faker.LetterN(3), Stamps: g.Stamps()}
}

func (g *DataGenerator) RankingPoint(system *relations.RankingSystem, place, points int) *relations.RankingPoint {
	return &relations.RankingPoint{
		Keyed:           g.Keyed(),
		RankingSystemID: system.ID,
		Place:           place,
		Points:          points,
		Stamps:          g.Stamps(),
		RankingSystem:   system,
	}
}

// Race returns a race of event with its category trio and ranking system
// loaded.
func (g *DataGenerator) Race(event *relations.Event, system *relations.RankingSystem) *relations.Race {
	category := &relations.RaceCategory{Keyed: g.Keyed(), Name: g.faker.RandomString([]string{"ELITE", "MASTER_A", "JUNIOR"}), Stamps: g.Stamps()}
	gender := &relations.RaceCategoryGender{Keyed: g.Keyed(), Name: g.faker.RandomString([]string{"M", "F", "OPEN"}), Stamps: g.Stamps()}
	length := &relations.RaceCategoryLength{Keyed: g.Keyed(), Name: g.faker.RandomString([]string{"SHORT", "LONG", "BREAKAWAY"}), Stamps: g.Stamps()}
	return &relations.Race{
		Keyed:                g.Keyed(),
		EventID:              event.ID,
		RaceCategoryID:       category.ID,
		RaceCategoryGenderID: gender.ID,
		RaceCategoryLengthID: length.ID,
		RankingSystemID:      system.ID,
		IsPublic:             true,
		Stamps:               g.Stamps(),
		Event:                event,
		RaceCategory:         category,
		RaceCategoryGender:   gender,
		RaceCategoryLength:   length,
		RankingSystem:        system,
	}
}

func (g *DataGenerator) Cyclist() *relations.Cyclist {
	gender := g.faker.RandomString([]string{"M", "F"})
	born := g.faker.Number(1950, 2008)
	return &relations.Cyclist{
		Keyed:     g.Keyed(),
		FirstName: g.faker.FirstName(),
		LastName:  g.faker.LastName(),
		Gender:    &gender,
		BornYear:  &born,
		Stamps:    g.Stamps(),
	}
}

// RaceResult links cyclist to race at place. rp may be nil.
func (g *DataGenerator) RaceResult(race *relations.Race, cyclist *relations.Cyclist, place int, rp *relations.RankingPoint) *relations.RaceResult {
	finish := g.faker.Regex("0[1-3]:[0-5][0-9]:[0-5][0-9]")
	rr := &relations.RaceResult{
		Keyed:     g.Keyed(),
		RaceID:    race.ID,
		CyclistID: cyclist.ID,
		Place:     place,
		Time:      &finish,
		Stamps:    g.Stamps(),
		Race:      race,
		Cyclist:   cyclist,
	}
	if rp != nil {
		rr.RankingPointID = &rp.ID
		rr.RankingPoint = rp
	}
	return rr
}

// RaceWithResults builds a domain race with one result per place, in the
// given order.
func (g *DataGenerator) RaceWithResults(places ...int) *entities.RaceWithResults {
	now := isotime.Format(g.Time())
	stamps := entities.Timestamps{CreatedAt: now, UpdatedAt: now}
	race := entities.Race{
		ID:                   g.PublicKey(),
		EventID:              g.PublicKey(),
		RaceCategoryID:       g.PublicKey(),
		RaceCategoryGenderID: g.PublicKey(),
		RaceCategoryLengthID: g.PublicKey(),
		RankingSystemID:      g.PublicKey(),
		IsPublic:             true,
		Timestamps:           stamps,
	}
	out := &entities.RaceWithResults{Race: race, RaceResults: []entities.RaceResultWithCyclist{}}
	for _, place := range places {
		cyclist := entities.Cyclist{Identity: entities.Identity{
			ID:         g.PublicKey(),
			FirstName:  g.faker.FirstName(),
			LastName:   g.faker.LastName(),
			Timestamps: stamps,
		}}
		out.RaceResults = append(out.RaceResults, entities.RaceResultWithCyclist{
			RaceResult: entities.RaceResult{
				ID:         g.PublicKey(),
				RaceID:     race.ID,
				CyclistID:  cyclist.ID,
				Place:      place,
				Timestamps: stamps,
			},
			Cyclist: cyclist,
		})
	}
	return out
}
