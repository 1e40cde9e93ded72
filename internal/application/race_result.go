package application

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"raceboard/internal/domain"
	"raceboard/internal/domain/entities"
	"raceboard/internal/ports/input"
	"raceboard/internal/ports/output"
)

var _ input.RaceResultUseCase = (*RaceResultService)(nil)

type RaceResultService struct {
	resolver *IdentifierResolver
	races    output.RaceRepository
	telemetry
}

func NewRaceResultService(
	lookups output.LookupRepository,
	races output.RaceRepository,
	log *zap.SugaredLogger,
	tracer trace.Tracer,
) *RaceResultService {
	return &RaceResultService{
		resolver:  NewIdentifierResolver(lookups),
		races:     races,
		telemetry: newTelemetry(log, tracer),
	}
}

// ResolveRace returns the race named by the four public keys with its
// results ordered by place, or nil when any key or the combination does
// not exist.
func (s *RaceResultService) ResolveRace(ctx context.Context, eventID, categoryID, genderID, lengthID string) (*entities.RaceWithResults, error) {
	identifier := strings.Join([]string{eventID, categoryID, genderID, lengthID}, "/")
	return withTelemetry(s.telemetry, ctx, "ResolveRace", identifier, func(ctx context.Context) (*entities.RaceWithResults, error) {
		keys, found, err := s.resolver.Resolve(ctx, output.RacePublicKeys{
			Event:    eventID,
			Category: categoryID,
			Gender:   genderID,
			Length:   lengthID,
		})
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("resolve race: unknown identifier: %w", domain.ErrNotFound)
		}

		race, err := s.races.FindWithResults(ctx, keys)
		if err != nil {
			return nil, err
		}
		sortByPlace(race.RaceResults)
		return race, nil
	})
}

// RaceResultsForCyclist returns every result of a cyclist, or nil when the
// cyclist does not exist.
func (s *RaceResultService) RaceResultsForCyclist(ctx context.Context, cyclistID string) ([]entities.CyclistRaceResult, error) {
	return withTelemetry(s.telemetry, ctx, "RaceResultsForCyclist", cyclistID, func(ctx context.Context) ([]entities.CyclistRaceResult, error) {
		if cyclistID == "" {
			return nil, domain.ErrNotFound
		}
		return s.races.FindCyclistResults(ctx, cyclistID)
	})
}

func sortByPlace(results []entities.RaceResultWithCyclist) {
	slices.SortStableFunc(results, func(a, b entities.RaceResultWithCyclist) int {
		return cmp.Compare(a.Place, b.Place)
	})
}
