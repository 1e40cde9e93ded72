package input

import (
	"context"

	"raceboard/internal/domain/entities"
)

type EventUseCase interface {
	EventWithRaces(ctx context.Context, eventID string) (*entities.EventWithRaces, error)
	EventsByOrganization(ctx context.Context, organizationID string) ([]entities.Event, error)
	PublicEvents(ctx context.Context, year int) ([]entities.Event, error)
	CreateEvent(ctx context.Context, actorAuthID string, payload entities.NewEvent) (entities.NewEventResult, error)
}

type OrganizationUseCase interface {
	Organization(ctx context.Context, organizationID string) (*entities.Organization, error)
	CompleteOwnerSignup(ctx context.Context, actorAuthID string, payload entities.OwnerSignup) (entities.OwnerSignupResult, error)
}

type RankingUseCase interface {
	RankingPoints(ctx context.Context, rankingSystemID string) ([]entities.RankingPoint, error)
}
