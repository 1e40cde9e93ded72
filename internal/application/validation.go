package application

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"raceboard/internal/domain"
)

var validate = validator.New()

// validatePayload checks the validate tags of a procedure payload.
func validatePayload(payload any) error {
	if err := validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	return nil
}
