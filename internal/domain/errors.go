package domain

import (
	"errors"
	"fmt"
)

// Expected absence. Repositories return it for point lookups that match no
// row; services turn it into a nil result.
var ErrNotFound = errors.New("not found")

// Integrity errors: the stored data or the caller broke an invariant the
// code relies on. Never recovered from within a request.
var (
	ErrIntegrity         = errors.New("data integrity violation")
	ErrUnknownRole       = fmt.Errorf("%w: unknown user role", ErrIntegrity)
	ErrRoleShapeMismatch = fmt.Errorf("%w: row does not match its role", ErrIntegrity)
)

// Atomic procedure outcomes.
var (
	ErrProcedureFailed = errors.New("procedure reported failure")
	ErrInvalidPayload  = errors.New("invalid procedure payload")
)

// Code returns a stable, machine-readable code for a domain error, or ""
// when err is not a domain error.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnknownRole):
		return "unknown_role"
	case errors.Is(err, ErrRoleShapeMismatch):
		return "role_shape_mismatch"
	case errors.Is(err, ErrIntegrity):
		return "integrity"
	case errors.Is(err, ErrInvalidPayload):
		return "invalid_payload"
	case errors.Is(err, ErrProcedureFailed):
		return "procedure_failed"
	default:
		return ""
	}
}
