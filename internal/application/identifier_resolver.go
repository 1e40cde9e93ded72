package application

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"raceboard/internal/domain"
	"raceboard/internal/ports/output"
)

// IdentifierResolver turns the four public keys naming a race into
// internal keys.
type IdentifierResolver struct {
	lookups output.LookupRepository
}

func NewIdentifierResolver(lookups output.LookupRepository) *IdentifierResolver {
	return &IdentifierResolver{lookups: lookups}
}

// Resolve runs the four lookups concurrently. found is false, with a nil
// error, as soon as one of them matches nothing; the others are cancelled.
// Any other failure is returned as an error.
func (r *IdentifierResolver) Resolve(ctx context.Context, keys output.RacePublicKeys) (output.RaceInternalKeys, bool, error) {
	if keys.Event == "" || keys.Category == "" || keys.Gender == "" || keys.Length == "" {
		return output.RaceInternalKeys{}, false, nil
	}

	var out output.RaceInternalKeys
	g, gctx := errgroup.WithContext(ctx)
	lookup := func(dst *string, get func(context.Context, string) (string, error), publicID string) {
		g.Go(func() error {
			key, err := get(gctx, publicID)
			if err != nil {
				return err
			}
			*dst = key
			return nil
		})
	}
	lookup(&out.Event, r.lookups.EventKey, keys.Event)
	lookup(&out.Category, r.lookups.RaceCategoryKey, keys.Category)
	lookup(&out.Gender, r.lookups.RaceCategoryGenderKey, keys.Gender)
	lookup(&out.Length, r.lookups.RaceCategoryLengthKey, keys.Length)

	if err := g.Wait(); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return output.RaceInternalKeys{}, false, nil
		}
		return output.RaceInternalKeys{}, false, fmt.Errorf("resolve race keys: %w", err)
	}
	return out, true, nil
}
