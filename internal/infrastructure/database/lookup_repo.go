package database

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"raceboard/internal/domain"
	"raceboard/internal/infrastructure/database/sqlc_generated"
	"raceboard/internal/infrastructure/metrics"
	"raceboard/internal/ports/output"
)

var _ output.LookupRepository = (*LookupRepository)(nil)

// LookupRepository implements output.LookupRepository using sqlc point
// lookups.
type LookupRepository struct {
	q *sqlc_generated.Queries
}

func NewLookupRepository(q *sqlc_generated.Queries) *LookupRepository {
	return &LookupRepository{q: q}
}

func (r *LookupRepository) EventKey(ctx context.Context, publicID string) (string, error) {
	return lookupKey(ctx, entityEvent, publicID, r.q.GetEventKey)
}

func (r *LookupRepository) RaceCategoryKey(ctx context.Context, publicID string) (string, error) {
	return lookupKey(ctx, entityRaceCategory, publicID, r.q.GetRaceCategoryKey)
}

func (r *LookupRepository) RaceCategoryGenderKey(ctx context.Context, publicID string) (string, error) {
	return lookupKey(ctx, entityRaceCategoryGender, publicID, r.q.GetRaceCategoryGenderKey)
}

func (r *LookupRepository) RaceCategoryLengthKey(ctx context.Context, publicID string) (string, error) {
	return lookupKey(ctx, entityRaceCategoryLength, publicID, r.q.GetRaceCategoryLengthKey)
}

func (r *LookupRepository) rankingSystemKey(ctx context.Context, publicID string) (uuid.UUID, error) {
	return lookupUUID(ctx, entityRankingSystem, publicID, r.q.GetRankingSystemKey)
}

type keyQuery func(context.Context, string) (uuid.UUID, error)

func lookupKey(ctx context.Context, entity, publicID string, get keyQuery) (string, error) {
	id, err := lookupUUID(ctx, entity, publicID, get)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func lookupUUID(ctx context.Context, entity, publicID string, get keyQuery) (uuid.UUID, error) {
	id, err := get(ctx, publicID)
	if err != nil {
		err = wrapErr("get "+entity+" key", err)
		if errors.Is(err, domain.ErrNotFound) {
			metrics.LookupsTotal.WithLabelValues(entity, metrics.OutcomeNotFound).Inc()
		} else {
			metrics.LookupsTotal.WithLabelValues(entity, metrics.OutcomeError).Inc()
		}
		return uuid.Nil, err
	}
	metrics.LookupsTotal.WithLabelValues(entity, metrics.OutcomeOK).Inc()
	return id, nil
}
