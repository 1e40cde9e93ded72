package output

import (
	"context"

	"raceboard/internal/domain/entities"
)

// UserRepository builds users from role-tagged rows. Besides
// domain.ErrNotFound it may return errors wrapping domain.ErrIntegrity when
// a row does not match its role.
type UserRepository interface {
	SessionUser(ctx context.Context, authID string) (entities.User, error)
	FindByEmail(ctx context.Context, email string) (entities.User, error)
	FindByPublicID(ctx context.Context, publicID string) (entities.User, error)
}
