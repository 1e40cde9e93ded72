package database

import (
	"context"
	"fmt"

	"raceboard/internal/domain/entities"
	"raceboard/internal/infrastructure/database/sqlc_generated"
	"raceboard/internal/ports/output"
)

var (
	_ output.OrganizationRepository = (*OrganizationRepository)(nil)
	_ output.RankingRepository      = (*RankingRepository)(nil)
)

type OrganizationRepository struct {
	q *sqlc_generated.Queries
}

func NewOrganizationRepository(q *sqlc_generated.Queries) *OrganizationRepository {
	return &OrganizationRepository{q: q}
}

func (r *OrganizationRepository) FindByPublicID(ctx context.Context, publicID string) (*entities.Organization, error) {
	row, err := r.q.GetOrganizationWithEventCount(ctx, publicID)
	if err != nil {
		return nil, wrapErr("get organization", err)
	}
	org := organizationToDomain(row.Organization)
	count := int(row.EventCount)
	org.EventCount = &count
	return &org, nil
}

// RankingRepository reads ranking-point tables. An unknown ranking system
// is domain.ErrNotFound; a known one without points is an empty table.
type RankingRepository struct {
	q      *sqlc_generated.Queries
	lookup *LookupRepository
}

func NewRankingRepository(q *sqlc_generated.Queries) *RankingRepository {
	return &RankingRepository{q: q, lookup: NewLookupRepository(q)}
}

func (r *RankingRepository) PointsBySystem(ctx context.Context, rankingSystemPublicID string) ([]entities.RankingPoint, error) {
	key, err := r.lookup.rankingSystemKey(ctx, rankingSystemPublicID)
	if err != nil {
		return nil, fmt.Errorf("list ranking points: %w", err)
	}
	rows, err := r.q.ListRankingPointsBySystem(ctx, key)
	if err != nil {
		return nil, wrapErr("list ranking points", err)
	}
	return mapSlice(rows, func(row sqlc_generated.ListRankingPointsBySystemRow) entities.RankingPoint {
		return rankingPointToDomain(row.RankingPoint, row.RankingSystemPublicID)
	}), nil
}
