package output

import "context"

// LookupRepository resolves public keys to internal keys with single-row
// point lookups. Every method returns domain.ErrNotFound when no row
// matches and any other error for infrastructure failures.
type LookupRepository interface {
	EventKey(ctx context.Context, publicID string) (string, error)
	RaceCategoryKey(ctx context.Context, publicID string) (string, error)
	RaceCategoryGenderKey(ctx context.Context, publicID string) (string, error)
	RaceCategoryLengthKey(ctx context.Context, publicID string) (string, error)
}
