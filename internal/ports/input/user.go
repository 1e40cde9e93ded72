package input

import (
	"context"

	"raceboard/internal/domain/entities"
)

type UserUseCase interface {
	CurrentUser(ctx context.Context, authID string) (entities.User, error)
	UserByEmail(ctx context.Context, email string) (entities.User, error)
	UserByID(ctx context.Context, publicID string) (entities.User, error)
}
