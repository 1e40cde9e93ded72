package database

import (
	"database/sql"
	"errors"
	"fmt"

	"raceboard/internal/domain"
)

// wrapErr prefixes err with op. A missing row becomes domain.ErrNotFound so
// callers never compare driver errors.
func wrapErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
