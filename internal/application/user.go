package application

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"raceboard/internal/domain"
	"raceboard/internal/domain/entities"
	"raceboard/internal/ports/input"
	"raceboard/internal/ports/output"
)

var _ input.UserUseCase = (*UserService)(nil)

// UserService returns authenticated user records. A nil user with a nil
// error means no such user.
type UserService struct {
	users output.UserRepository
	telemetry
}

func NewUserService(users output.UserRepository, log *zap.SugaredLogger, tracer trace.Tracer) *UserService {
	return &UserService{users: users, telemetry: newTelemetry(log, tracer)}
}

func (s *UserService) CurrentUser(ctx context.Context, authID string) (entities.User, error) {
	return withTelemetry(s.telemetry, ctx, "CurrentUser", authID, func(ctx context.Context) (entities.User, error) {
		if authID == "" {
			return nil, domain.ErrNotFound
		}
		return s.users.SessionUser(ctx, authID)
	})
}

func (s *UserService) UserByEmail(ctx context.Context, email string) (entities.User, error) {
	return withTelemetry(s.telemetry, ctx, "UserByEmail", email, func(ctx context.Context) (entities.User, error) {
		if email == "" {
			return nil, domain.ErrNotFound
		}
		return s.users.FindByEmail(ctx, email)
	})
}

func (s *UserService) UserByID(ctx context.Context, publicID string) (entities.User, error) {
	return withTelemetry(s.telemetry, ctx, "UserByID", publicID, func(ctx context.Context) (entities.User, error) {
		if publicID == "" {
			return nil, domain.ErrNotFound
		}
		return s.users.FindByPublicID(ctx, publicID)
	})
}
