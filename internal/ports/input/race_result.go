package input

import (
	"context"

	"raceboard/internal/domain/entities"
)

// RaceResultUseCase answers result-table queries. A nil result with a nil
// error means the identifiers do not resolve to anything.
type RaceResultUseCase interface {
	ResolveRace(ctx context.Context, eventID, categoryID, genderID, lengthID string) (*entities.RaceWithResults, error)
	RaceResultsForCyclist(ctx context.Context, cyclistID string) ([]entities.CyclistRaceResult, error)
}
