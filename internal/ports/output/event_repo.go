package output

import (
	"context"

	"raceboard/internal/domain/entities"
)

type EventRepository interface {
	FindWithRaces(ctx context.Context, publicID string) (*entities.EventWithRaces, error)
	FindByOrganization(ctx context.Context, organizationPublicID string) ([]entities.Event, error)
	FindPublicByYear(ctx context.Context, year int) ([]entities.Event, error)
}
