package application

import (
	"context"
	"sync"

	"raceboard/internal/domain"
	"raceboard/internal/domain/entities"
	"raceboard/internal/ports/output"
)

// ------------------------
// Fake Lookup Repository
// ------------------------

// FakeLookupRepository is called from several goroutines at once.
type FakeLookupRepository struct {
	mu    sync.Mutex
	trace []string

	EventKeyFunc              func(ctx context.Context, publicID string) (string, error)
	RaceCategoryKeyFunc       func(ctx context.Context, publicID string) (string, error)
	RaceCategoryGenderKeyFunc func(ctx context.Context, publicID string) (string, error)
	RaceCategoryLengthKeyFunc func(ctx context.Context, publicID string) (string, error)
}

func NewFakeLookupRepository() *FakeLookupRepository {
	return &FakeLookupRepository{trace: []string{}}
}

func (f *FakeLookupRepository) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakeLookupRepository) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.trace...)
}

func (f *FakeLookupRepository) call(ctx context.Context, step string, fn func(context.Context, string) (string, error), publicID string) (string, error) {
	f.record(step)
	if fn != nil {
		return fn(ctx, publicID)
	}
	return "internal-" + publicID, nil
}

func (f *FakeLookupRepository) EventKey(ctx context.Context, publicID string) (string, error) {
	return f.call(ctx, "EventKey", f.EventKeyFunc, publicID)
}

func (f *FakeLookupRepository) RaceCategoryKey(ctx context.Context, publicID string) (string, error) {
	return f.call(ctx, "RaceCategoryKey", f.RaceCategoryKeyFunc, publicID)
}

func (f *FakeLookupRepository) RaceCategoryGenderKey(ctx context.Context, publicID string) (string, error) {
	return f.call(ctx, "RaceCategoryGenderKey", f.RaceCategoryGenderKeyFunc, publicID)
}

func (f *FakeLookupRepository) RaceCategoryLengthKey(ctx context.Context, publicID string) (string, error) {
	return f.call(ctx, "RaceCategoryLengthKey", f.RaceCategoryLengthKeyFunc, publicID)
}

// ------------------------
// Fake Race Repository
// ------------------------

type FakeRaceRepository struct {
	trace []string

	FindWithResultsFunc    func(ctx context.Context, keys output.RaceInternalKeys) (*entities.RaceWithResults, error)
	FindCyclistResultsFunc func(ctx context.Context, cyclistPublicID string) ([]entities.CyclistRaceResult, error)
}

func NewFakeRaceRepository() *FakeRaceRepository {
	return &FakeRaceRepository{trace: []string{}}
}

func (f *FakeRaceRepository) Trace() []string { return f.trace }

func (f *FakeRaceRepository) FindWithResults(ctx context.Context, keys output.RaceInternalKeys) (*entities.RaceWithResults, error) {
	f.trace = append(f.trace, "FindWithResults")
	if f.FindWithResultsFunc != nil {
		return f.FindWithResultsFunc(ctx, keys)
	}
	return nil, domain.ErrNotFound
}

func (f *FakeRaceRepository) FindCyclistResults(ctx context.Context, cyclistPublicID string) ([]entities.CyclistRaceResult, error) {
	f.trace = append(f.trace, "FindCyclistResults")
	if f.FindCyclistResultsFunc != nil {
		return f.FindCyclistResultsFunc(ctx, cyclistPublicID)
	}
	return []entities.CyclistRaceResult{}, nil
}

// ------------------------
// Fake User Repository
// ------------------------

type FakeUserRepository struct {
	trace []string

	SessionUserFunc    func(ctx context.Context, authID string) (entities.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (entities.User, error)
	FindByPublicIDFunc func(ctx context.Context, publicID string) (entities.User, error)
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{trace: []string{}}
}

func (f *FakeUserRepository) Trace() []string { return f.trace }

func (f *FakeUserRepository) SessionUser(ctx context.Context, authID string) (entities.User, error) {
	f.trace = append(f.trace, "SessionUser")
	if f.SessionUserFunc != nil {
		return f.SessionUserFunc(ctx, authID)
	}
	return nil, domain.ErrNotFound
}

func (f *FakeUserRepository) FindByEmail(ctx context.Context, email string) (entities.User, error) {
	f.trace = append(f.trace, "FindByEmail")
	if f.FindByEmailFunc != nil {
		return f.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrNotFound
}

func (f *FakeUserRepository) FindByPublicID(ctx context.Context, publicID string) (entities.User, error) {
	f.trace = append(f.trace, "FindByPublicID")
	if f.FindByPublicIDFunc != nil {
		return f.FindByPublicIDFunc(ctx, publicID)
	}
	return nil, domain.ErrNotFound
}

// ------------------------
// Fake Event Repository
// ------------------------

type FakeEventRepository struct {
	trace []string

	FindWithRacesFunc      func(ctx context.Context, publicID string) (*entities.EventWithRaces, error)
	FindByOrganizationFunc func(ctx context.Context, organizationPublicID string) ([]entities.Event, error)
	FindPublicByYearFunc   func(ctx context.Context, year int) ([]entities.Event, error)
}

func NewFakeEventRepository() *FakeEventRepository {
	return &FakeEventRepository{trace: []string{}}
}

func (f *FakeEventRepository) Trace() []string { return f.trace }

func (f *FakeEventRepository) FindWithRaces(ctx context.Context, publicID string) (*entities.EventWithRaces, error) {
	f.trace = append(f.trace, "FindWithRaces")
	if f.FindWithRacesFunc != nil {
		return f.FindWithRacesFunc(ctx, publicID)
	}
	return nil, domain.ErrNotFound
}

func (f *FakeEventRepository) FindByOrganization(ctx context.Context, organizationPublicID string) ([]entities.Event, error) {
	f.trace = append(f.trace, "FindByOrganization")
	if f.FindByOrganizationFunc != nil {
		return f.FindByOrganizationFunc(ctx, organizationPublicID)
	}
	return []entities.Event{}, nil
}

func (f *FakeEventRepository) FindPublicByYear(ctx context.Context, year int) ([]entities.Event, error) {
	f.trace = append(f.trace, "FindPublicByYear")
	if f.FindPublicByYearFunc != nil {
		return f.FindPublicByYearFunc(ctx, year)
	}
	return []entities.Event{}, nil
}

// ------------------------
// Fake Procedure Repository
// ------------------------

type FakeProcedureRepository struct {
	trace []string

	CompleteOwnerSignupFunc  func(ctx context.Context, actorAuthID string, payload entities.OwnerSignup) (entities.OwnerSignupResult, error)
	CreateEventWithRacesFunc func(ctx context.Context, actorAuthID string, payload entities.NewEvent) (entities.NewEventResult, error)
}

func NewFakeProcedureRepository() *FakeProcedureRepository {
	return &FakeProcedureRepository{trace: []string{}}
}

func (f *FakeProcedureRepository) Trace() []string { return f.trace }

func (f *FakeProcedureRepository) CompleteOwnerSignup(ctx context.Context, actorAuthID string, payload entities.OwnerSignup) (entities.OwnerSignupResult, error) {
	f.trace = append(f.trace, "CompleteOwnerSignup")
	if f.CompleteOwnerSignupFunc != nil {
		return f.CompleteOwnerSignupFunc(ctx, actorAuthID, payload)
	}
	return entities.OwnerSignupResult{}, nil
}

func (f *FakeProcedureRepository) CreateEventWithRaces(ctx context.Context, actorAuthID string, payload entities.NewEvent) (entities.NewEventResult, error) {
	f.trace = append(f.trace, "CreateEventWithRaces")
	if f.CreateEventWithRacesFunc != nil {
		return f.CreateEventWithRacesFunc(ctx, actorAuthID, payload)
	}
	return entities.NewEventResult{}, nil
}

// ------------------------
// Fake Organization and Ranking Repositories
// ------------------------

type FakeOrganizationRepository struct {
	trace []string

	FindByPublicIDFunc func(ctx context.Context, publicID string) (*entities.Organization, error)
}

func (f *FakeOrganizationRepository) FindByPublicID(ctx context.Context, publicID string) (*entities.Organization, error) {
	f.trace = append(f.trace, "FindByPublicID")
	if f.FindByPublicIDFunc != nil {
		return f.FindByPublicIDFunc(ctx, publicID)
	}
	return nil, domain.ErrNotFound
}

type FakeRankingRepository struct {
	trace []string

	PointsBySystemFunc func(ctx context.Context, rankingSystemPublicID string) ([]entities.RankingPoint, error)
}

func (f *FakeRankingRepository) PointsBySystem(ctx context.Context, rankingSystemPublicID string) ([]entities.RankingPoint, error) {
	f.trace = append(f.trace, "PointsBySystem")
	if f.PointsBySystemFunc != nil {
		return f.PointsBySystemFunc(ctx, rankingSystemPublicID)
	}
	return []entities.RankingPoint{}, nil
}

var (
	_ output.LookupRepository       = (*FakeLookupRepository)(nil)
	_ output.RaceRepository         = (*FakeRaceRepository)(nil)
	_ output.UserRepository         = (*FakeUserRepository)(nil)
	_ output.EventRepository        = (*FakeEventRepository)(nil)
	_ output.ProcedureRepository    = (*FakeProcedureRepository)(nil)
	_ output.OrganizationRepository = (*FakeOrganizationRepository)(nil)
	_ output.RankingRepository      = (*FakeRankingRepository)(nil)
)
