package output

import (
	"context"

	"raceboard/internal/domain/entities"
)

// ProcedureRepository calls the stored procedures that write several
// tables as one unit. A procedure that reports failure yields an error
// wrapping domain.ErrProcedureFailed.
type ProcedureRepository interface {
	CompleteOwnerSignup(ctx context.Context, actorAuthID string, payload entities.OwnerSignup) (entities.OwnerSignupResult, error)
	CreateEventWithRaces(ctx context.Context, actorAuthID string, payload entities.NewEvent) (entities.NewEventResult, error)
}
