package output

import (
	"context"

	"raceboard/internal/domain/entities"
)

type OrganizationRepository interface {
	FindByPublicID(ctx context.Context, publicID string) (*entities.Organization, error)
}

type RankingRepository interface {
	PointsBySystem(ctx context.Context, rankingSystemPublicID string) ([]entities.RankingPoint, error)
}
