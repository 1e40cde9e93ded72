package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"raceboard/internal/domain"
	"raceboard/internal/domain/entities"
	"raceboard/internal/infrastructure/database/sqlc_generated"
	"raceboard/internal/ports/output"
)

var _ output.ProcedureRepository = (*ProcedureRepository)(nil)

// ProcedureRepository calls the stored procedures that write several
// tables in one transaction on the server side.
type ProcedureRepository struct {
	q *sqlc_generated.Queries
}

func NewProcedureRepository(q *sqlc_generated.Queries) *ProcedureRepository {
	return &ProcedureRepository{q: q}
}

// procedureResult is the envelope every procedure returns.
type procedureResult struct {
	Success bool    `json:"success"`
	Error   *string `json:"error"`

	UserPublicID         string   `json:"user_public_id"`
	OrganizationPublicID string   `json:"organization_public_id"`
	EventPublicID        string   `json:"event_public_id"`
	RacePublicIDs        []string `json:"race_public_ids"`
}

func (r *ProcedureRepository) CompleteOwnerSignup(ctx context.Context, actorAuthID string, payload entities.OwnerSignup) (entities.OwnerSignupResult, error) {
	const op = "complete owner signup"
	authID, body, err := procedureArgs(op, actorAuthID, payload)
	if err != nil {
		return entities.OwnerSignupResult{}, err
	}
	raw, err := r.q.CompleteOwnerSignup(ctx, sqlc_generated.CompleteOwnerSignupParams{AuthID: authID, Payload: body})
	if err != nil {
		return entities.OwnerSignupResult{}, wrapErr(op, err)
	}
	res, err := decodeProcedureResult(op, raw.String, raw.Valid)
	if err != nil {
		return entities.OwnerSignupResult{}, err
	}
	return entities.OwnerSignupResult{
		UserID:         res.UserPublicID,
		OrganizationID: res.OrganizationPublicID,
	}, nil
}

func (r *ProcedureRepository) CreateEventWithRaces(ctx context.Context, actorAuthID string, payload entities.NewEvent) (entities.NewEventResult, error) {
	const op = "create event with races"
	authID, body, err := procedureArgs(op, actorAuthID, payload)
	if err != nil {
		return entities.NewEventResult{}, err
	}
	raw, err := r.q.CreateEventWithRaces(ctx, sqlc_generated.CreateEventWithRacesParams{AuthID: authID, Payload: body})
	if err != nil {
		return entities.NewEventResult{}, wrapErr(op, err)
	}
	res, err := decodeProcedureResult(op, raw.String, raw.Valid)
	if err != nil {
		return entities.NewEventResult{}, err
	}
	return entities.NewEventResult{
		EventID: res.EventPublicID,
		RaceIDs: mapSlice(res.RacePublicIDs, func(id string) string { return id }),
	}, nil
}

func procedureArgs(op, actorAuthID string, payload any) (authID uuid.UUID, body string, err error) {
	id, ok := parseAuthID(actorAuthID)
	if !ok {
		return id, "", fmt.Errorf("%s: actor %q: %w", op, actorAuthID, domain.ErrInvalidPayload)
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return id, "", fmt.Errorf("%s: encode payload: %w", op, err)
	}
	return id, string(b), nil
}

func decodeProcedureResult(op, raw string, valid bool) (procedureResult, error) {
	if !valid {
		return procedureResult{}, fmt.Errorf("%s: empty result: %w", op, domain.ErrProcedureFailed)
	}
	var res procedureResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return procedureResult{}, fmt.Errorf("%s: decode result: %w", op, err)
	}
	if !res.Success {
		msg := "unknown error"
		if res.Error != nil {
			msg = *res.Error
		}
		return procedureResult{}, fmt.Errorf("%s: %w: %s", op, domain.ErrProcedureFailed, msg)
	}
	return res, nil
}
