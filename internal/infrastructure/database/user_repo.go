package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"raceboard/internal/domain"
	"raceboard/internal/domain/entities"
	"raceboard/internal/infrastructure/database/sqlc_generated"
	"raceboard/internal/ports/output"
)

var _ output.UserRepository = (*UserRepository)(nil)

// UserRepository implements output.UserRepository. Rows that do not match
// their role are logged and returned as integrity errors.
type UserRepository struct {
	q   *sqlc_generated.Queries
	log *zap.SugaredLogger
}

func NewUserRepository(q *sqlc_generated.Queries, log *zap.SugaredLogger) *UserRepository {
	return &UserRepository{q: q, log: log}
}

func (r *UserRepository) SessionUser(ctx context.Context, authID string) (entities.User, error) {
	id, ok := parseAuthID(authID)
	if !ok {
		return nil, fmt.Errorf("get session user: %w", domain.ErrNotFound)
	}
	payload, err := r.q.GetSessionUser(ctx, id)
	if err != nil {
		return nil, wrapErr("get session user", err)
	}
	if !payload.Valid {
		return nil, fmt.Errorf("get session user: %w", domain.ErrNotFound)
	}

	row, err := parseSessionUser([]byte(payload.String))
	if err != nil {
		return nil, r.integrity("get session user", authID, err)
	}
	shape, err := row.shape()
	if err != nil {
		return nil, r.integrity("get session user", authID, err)
	}
	user, err := buildUser(shape)
	if err != nil {
		return nil, r.integrity("get session user", authID, err)
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (entities.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, wrapErr("get user by email", err)
	}
	user, err := buildUser(lookupShape(row))
	if err != nil {
		return nil, r.integrity("get user by email", email, err)
	}
	return user, nil
}

func (r *UserRepository) FindByPublicID(ctx context.Context, publicID string) (entities.User, error) {
	row, err := r.q.GetUserByPublicID(ctx, publicID)
	if err != nil {
		return nil, wrapErr("get user by id", err)
	}
	user, err := buildUser(lookupShape(UserLookupRow(row)))
	if err != nil {
		return nil, r.integrity("get user by id", publicID, err)
	}
	return user, nil
}

func (r *UserRepository) integrity(op, key string, err error) error {
	r.log.Errorw("user row does not match its role", "op", op, "key", key, "code", domain.Code(err), "err", err)
	return fmt.Errorf("%s: %w", op, err)
}
