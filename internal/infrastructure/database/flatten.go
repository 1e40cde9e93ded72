package database

import (
	"raceboard/internal/domain"
	"raceboard/internal/domain/entities"
	"raceboard/internal/infrastructure/database/relations"
	"raceboard/pkg/isotime"
)

// Adapters for the bun relation models. Every function is total: unloaded
// or null relations become nil pointers or empty slices.

func eventModelToDomain(m *relations.Event) entities.Event {
	out := entities.Event{
		ID:             modelKeys(entityEvent, m.Keyed).DomainID(),
		Name:           m.Name,
		Description:    m.Description,
		DateTime:       isotime.Format(m.DateTime),
		Year:           m.Year,
		City:           m.City,
		State:          m.State,
		Country:        m.Country,
		Status:         domain.EventStatus(m.Status),
		IsPublic:       m.IsPublic,
		OrganizationID: refID(entityOrganization, m.OrganizationID, m.Organization),
		Timestamps:     timeStamps(m.CreatedAt, m.UpdatedAt),
	}
	if m.CreatedBy != nil {
		creator := refID(entityUser, *m.CreatedBy, m.Creator)
		out.CreatedBy = &creator
	}
	return out
}

func raceModelToDomain(m *relations.Race, eventID string) entities.Race {
	return entities.Race{
		ID:                   modelKeys(entityRace, m.Keyed).DomainID(),
		EventID:              eventID,
		RaceCategoryID:       refID(entityRaceCategory, m.RaceCategoryID, m.RaceCategory),
		RaceCategoryGenderID: refID(entityRaceCategoryGender, m.RaceCategoryGenderID, m.RaceCategoryGender),
		RaceCategoryLengthID: refID(entityRaceCategoryLength, m.RaceCategoryLengthID, m.RaceCategoryLength),
		RankingSystemID:      refID(entityRankingSystem, m.RankingSystemID, m.RankingSystem),
		Name:                 m.Name,
		Description:          m.Description,
		StartAt:              isotime.FormatPtr(m.StartAt),
		IsPublic:             m.IsPublic,
		Timestamps:           timeStamps(m.CreatedAt, m.UpdatedAt),
	}
}

// raceResultModelToDomain copies the point value of the referenced ranking
// point into the result. Points stays nil without one.
func raceResultModelToDomain(m *relations.RaceResult, raceID, cyclistID string) entities.RaceResult {
	out := entities.RaceResult{
		ID:         modelKeys(entityRaceResult, m.Keyed).DomainID(),
		RaceID:     raceID,
		CyclistID:  cyclistID,
		Place:      m.Place,
		Time:       m.Time,
		Timestamps: timeStamps(m.CreatedAt, m.UpdatedAt),
	}
	if m.RankingPointID != nil {
		id := refID(entityRankingPoint, *m.RankingPointID, m.RankingPoint)
		out.RankingPointID = &id
	}
	if m.RankingPoint.Key() != nil {
		points := m.RankingPoint.Points
		out.Points = &points
	}
	return out
}

func rankingPointModelToDomain(m *relations.RankingPoint) *entities.RankingPoint {
	if m.Key() == nil {
		return nil
	}
	return &entities.RankingPoint{
		ID:              modelKeys(entityRankingPoint, m.Keyed).DomainID(),
		RankingSystemID: refID(entityRankingSystem, m.RankingSystemID, m.RankingSystem),
		Place:           m.Place,
		Points:          m.Points,
		Timestamps:      timeStamps(m.CreatedAt, m.UpdatedAt),
	}
}

func rankingSystemModelToDomain(m *relations.RankingSystem) *entities.RankingSystem {
	if m.Key() == nil {
		return nil
	}
	return &entities.RankingSystem{
		ID:          modelKeys(entityRankingSystem, m.Keyed).DomainID(),
		Name:        m.Name,
		Description: m.Description,
		Timestamps:  timeStamps(m.CreatedAt, m.UpdatedAt),
	}
}

// cyclistModelToDomain builds the cyclist shown in result tables. The email
// is never exposed there.
func cyclistModelToDomain(m *relations.Cyclist) entities.Cyclist {
	return entities.Cyclist{
		Identity: entities.Identity{
			ID:         modelKeys(entityCyclist, m.Keyed).DomainID(),
			FirstName:  m.FirstName,
			LastName:   m.LastName,
			Timestamps: timeStamps(m.CreatedAt, m.UpdatedAt),
		},
		Gender:   m.Gender,
		BornYear: m.BornYear,
		HasAuth:  m.User != nil && m.User.AuthID != nil,
	}
}

func lookupEntry(entity string, k relations.Keyed, name string, description *string, s relations.Stamps) *entities.LookupEntry {
	return &entities.LookupEntry{
		ID:          modelKeys(entity, k).DomainID(),
		Name:        name,
		Description: description,
		Timestamps:  timeStamps(s.CreatedAt, s.UpdatedAt),
	}
}

func raceCategoryToDomain(m *relations.RaceCategory) *entities.LookupEntry {
	if m.Key() == nil {
		return nil
	}
	return lookupEntry(entityRaceCategory, m.Keyed, m.Name, m.Description, m.Stamps)
}

func raceCategoryGenderToDomain(m *relations.RaceCategoryGender) *entities.LookupEntry {
	if m.Key() == nil {
		return nil
	}
	return lookupEntry(entityRaceCategoryGender, m.Keyed, m.Name, m.Description, m.Stamps)
}

func raceCategoryLengthToDomain(m *relations.RaceCategoryLength) *entities.LookupEntry {
	if m.Key() == nil {
		return nil
	}
	return lookupEntry(entityRaceCategoryLength, m.Keyed, m.Name, m.Description, m.Stamps)
}

// flattenRace is the race-centric flattening: one race, its results, each
// result with its cyclist and ranking point. Result order is kept.
func flattenRace(m *relations.Race) *entities.RaceWithResults {
	race := raceModelToDomain(m, refID(entityEvent, m.EventID, m.Event))
	return &entities.RaceWithResults{
		Race: race,
		RaceResults: mapSlice(m.RaceResults, func(rr *relations.RaceResult) entities.RaceResultWithCyclist {
			out := entities.RaceResultWithCyclist{
				RaceResult:   raceResultModelToDomain(rr, race.ID, refID(entityCyclist, rr.CyclistID, rr.Cyclist)),
				RankingPoint: rankingPointModelToDomain(rr.RankingPoint),
			}
			if rr.Cyclist.Key() != nil {
				out.Cyclist = cyclistModelToDomain(rr.Cyclist)
			}
			return out
		}),
	}
}

// flattenCyclistResults is the cyclist-centric flattening: one row per
// result, each with its race, event, categories and ranking detail inlined.
func flattenCyclistResults(m *relations.Cyclist) []entities.CyclistRaceResult {
	cyclistID := modelKeys(entityCyclist, m.Keyed).DomainID()
	return mapSlice(m.RaceResults, func(rr *relations.RaceResult) entities.CyclistRaceResult {
		raceID := refID(entityRace, rr.RaceID, rr.Race)
		out := entities.CyclistRaceResult{
			RaceResult:   raceResultModelToDomain(rr, raceID, cyclistID),
			RankingPoint: rankingPointModelToDomain(rr.RankingPoint),
		}
		if rr.Race.Key() == nil {
			out.Race.ID = raceID
			return out
		}
		out.Race = raceModelToDomain(rr.Race, refID(entityEvent, rr.Race.EventID, rr.Race.Event))
		if rr.Race.Event.Key() != nil {
			event := eventModelToDomain(rr.Race.Event)
			out.Event = &event
		}
		out.RaceCategory = raceCategoryToDomain(rr.Race.RaceCategory)
		out.RaceCategoryGender = raceCategoryGenderToDomain(rr.Race.RaceCategoryGender)
		out.RaceCategoryLength = raceCategoryLengthToDomain(rr.Race.RaceCategoryLength)
		out.RankingSystem = rankingSystemModelToDomain(rr.Race.RankingSystem)
		return out
	})
}

// flattenEvent is the event-centric flattening: one event and its races,
// each with its category trio.
func flattenEvent(m *relations.Event) *entities.EventWithRaces {
	event := eventModelToDomain(m)
	return &entities.EventWithRaces{
		Event: event,
		Races: mapSlice(m.Races, func(r *relations.Race) entities.RaceWithCategories {
			return entities.RaceWithCategories{
				Race:               raceModelToDomain(r, event.ID),
				RaceCategory:       raceCategoryToDomain(r.RaceCategory),
				RaceCategoryGender: raceCategoryGenderToDomain(r.RaceCategoryGender),
				RaceCategoryLength: raceCategoryLengthToDomain(r.RaceCategoryLength),
			}
		}),
	}
}
