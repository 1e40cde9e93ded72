//go:build integration

package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"raceboard/internal/config"
	"raceboard/internal/domain"
	"raceboard/internal/domain/entities"
	"raceboard/internal/infrastructure/database/relations"
	"raceboard/internal/ports/output"
	fixtures "raceboard/internal/testutil"
)

type StoreSuite struct {
	suite.Suite
	ctx       context.Context
	terminate func()
	store     *Store
	gen       *fixtures.DataGenerator
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupSuite() {
	s.ctx = context.Background()
	log := zap.NewNop().Sugar()

	pg, dsn, err := fixtures.PostgresContainer(s.ctx)
	s.Require().NoError(err)
	s.terminate = func() { _ = pg.Terminate(s.ctx) }

	s.Require().NoError(RunMigrations(dsn, log))
	pool, err := NewPool(s.ctx, config.DatabaseConfig{URL: dsn, MaxConns: 4}, log)
	s.Require().NoError(err)
	s.store = NewStore(pool)
	s.gen = fixtures.NewDataGenerator(2024)
}

func (s *StoreSuite) TearDownSuite() {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.terminate != nil {
		s.terminate()
	}
}

func (s *StoreSuite) insert(models ...any) {
	for _, m := range models {
		_, err := s.store.Bun.NewInsert().Model(m).Exec(s.ctx)
		s.Require().NoError(err)
	}
}

type seededRace struct {
	race   *relations.Race
	system *relations.RankingSystem
	riders []*relations.Cyclist
}

// seedRace stores an event with one race and three results: the first two
// places carry 100 and 50 points, the third none.
func (s *StoreSuite) seedRace() seededRace {
	g := s.gen
	org := g.Organization()
	event := g.Event(org)
	system := g.RankingSystem()
	race := g.Race(event, system)
	first, second := g.RankingPoint(system, 1, 100), g.RankingPoint(system, 2, 50)
	riders := []*relations.Cyclist{g.Cyclist(), g.Cyclist(), g.Cyclist()}

	s.insert(org, event, system, first, second,
		race.RaceCategory, race.RaceCategoryGender, race.RaceCategoryLength, race)
	for _, c := range riders {
		s.insert(c)
	}
	// stored out of place order
	s.insert(
		g.RaceResult(race, riders[2], 3, nil),
		g.RaceResult(race, riders[0], 1, first),
		g.RaceResult(race, riders[1], 2, second),
	)
	return seededRace{race: race, system: system, riders: riders}
}

func (s *StoreSuite) TestRaceWithResults() {
	seed := s.seedRace()
	lookups := NewLookupRepository(s.store.Queries)

	event, err := lookups.EventKey(s.ctx, *seed.race.Event.PublicID)
	s.Require().NoError(err)
	category, err := lookups.RaceCategoryKey(s.ctx, *seed.race.RaceCategory.PublicID)
	s.Require().NoError(err)
	gender, err := lookups.RaceCategoryGenderKey(s.ctx, *seed.race.RaceCategoryGender.PublicID)
	s.Require().NoError(err)
	length, err := lookups.RaceCategoryLengthKey(s.ctx, *seed.race.RaceCategoryLength.PublicID)
	s.Require().NoError(err)

	got, err := NewRaceRepository(s.store.Bun).FindWithResults(s.ctx, output.RaceInternalKeys{
		Event: event, Category: category, Gender: gender, Length: length,
	})

	s.Require().NoError(err)
	s.Equal(*seed.race.PublicID, got.ID)
	s.Require().Len(got.RaceResults, 3)
	for i, rr := range got.RaceResults {
		s.Equal(i+1, rr.Place)
		s.Equal(got.ID, rr.RaceID)
		s.Equal(*seed.riders[i].PublicID, rr.Cyclist.ID)
	}
	s.Equal(100, *got.RaceResults[0].Points)
	s.Equal(50, *got.RaceResults[1].Points)
	s.Nil(got.RaceResults[2].Points)
	s.Nil(got.RaceResults[2].RankingPoint)
}

func (s *StoreSuite) TestCyclistResultsAndLegacyKeys() {
	seed := s.seedRace()
	rider := seed.riders[0]

	got, err := NewRaceRepository(s.store.Bun).FindCyclistResults(s.ctx, *rider.PublicID)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(*seed.race.PublicID, got[0].Race.ID)
	s.Require().NotNil(got[0].Event)
	s.Equal(*seed.race.Event.PublicID, got[0].Event.ID)

	_, err = s.store.DB.ExecContext(s.ctx, `UPDATE cyclist SET public_id = NULL WHERE id = $1`, rider.ID)
	s.Require().NoError(err)
	legacy, err := NewRaceRepository(s.store.Bun).FindCyclistResults(s.ctx, rider.ID.String())
	s.Require().NoError(err)
	s.Len(legacy, 1)
	s.Equal(rider.ID.String(), legacy[0].CyclistID)

	_, err = NewRaceRepository(s.store.Bun).FindCyclistResults(s.ctx, uuid.NewString())
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *StoreSuite) TestRankingPoints() {
	seed := s.seedRace()

	got, err := NewRankingRepository(s.store.Queries).PointsBySystem(s.ctx, *seed.system.PublicID)

	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(1, got[0].Place)
	s.Equal(2, got[1].Place)
}

func (s *StoreSuite) TestCreateEventAndSessionUser() {
	seed := s.seedRace()
	org := seed.race.Event.Organization
	authID := uuid.New()
	admin := &relations.User{Keyed: s.gen.Keyed(), AuthID: &authID, Email: "admin@raceboard.test", Role: string(domain.RoleAdmin)}
	s.insert(admin)

	users := NewUserRepository(s.store.Queries, zap.NewNop().Sugar())
	u, err := users.SessionUser(s.ctx, authID.String())
	s.Require().NoError(err)
	s.Equal(domain.RoleAdmin, u.Role())
	s.Equal(*admin.PublicID, u.Base().ID)

	procedures := NewProcedureRepository(s.store.Queries)
	res, err := procedures.CreateEventWithRaces(s.ctx, authID.String(), entities.NewEvent{
		PublicID:             domain.NewPublicKey(),
		OrganizationPublicID: *org.PublicID,
		Name:                 "Night Criterium",
		DateTime:             "2025-07-12T19:30:00Z",
		IsPublic:             true,
		Races: []entities.NewRace{{
			PublicID:                   domain.NewPublicKey(),
			RaceCategoryPublicID:       *seed.race.RaceCategory.PublicID,
			RaceCategoryGenderPublicID: *seed.race.RaceCategoryGender.PublicID,
			RaceCategoryLengthPublicID: *seed.race.RaceCategoryLength.PublicID,
			RankingSystemPublicID:      *seed.system.PublicID,
		}},
	})
	s.Require().NoError(err)
	s.Len(res.RaceIDs, 1)

	event, err := NewEventRepository(s.store.Queries, s.store.Bun).FindWithRaces(s.ctx, res.EventID)
	s.Require().NoError(err)
	s.Equal(2025, event.Year)
	s.Require().Len(event.Races, 1)
	s.Equal(res.RaceIDs[0], event.Races[0].ID)

	_, err = procedures.CreateEventWithRaces(s.ctx, authID.String(), entities.NewEvent{
		PublicID:             domain.NewPublicKey(),
		OrganizationPublicID: "does-not-exist",
		Name:                 "Ghost Ride",
		DateTime:             "2025-07-12T19:30:00Z",
	})
	s.ErrorIs(err, domain.ErrProcedureFailed)
}

func TestMigrationsRollBack(t *testing.T) {
	ctx := context.Background()
	pg, dsn, err := fixtures.PostgresContainer(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	log := zap.NewNop().Sugar()
	require.NoError(t, RunMigrations(dsn, log))
	require.NoError(t, RollbackMigrations(dsn, 3, log))
	assert.NoError(t, RunMigrations(dsn, log))
}
