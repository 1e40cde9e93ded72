package output

import (
	"context"

	"raceboard/internal/domain/entities"
)

type RaceRepository interface {
	// FindWithResults returns the race matching keys with its results
	// ordered by place, or domain.ErrNotFound.
	FindWithResults(ctx context.Context, keys RaceInternalKeys) (*entities.RaceWithResults, error)
	// FindCyclistResults returns domain.ErrNotFound when the cyclist does
	// not exist and an empty slice when it has no results.
	FindCyclistResults(ctx context.Context, cyclistPublicID string) ([]entities.CyclistRaceResult, error)
}
