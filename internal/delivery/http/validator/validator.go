// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "chapel/internal/domain/errors"

	playgroundvalidator "github.com/go-playground/validator/v10"
)

// Validator wraps a validator instance for echo.
type Validator struct {
	validate *playgroundvalidator.Validate
}

// New creates the echo request validator.
func New() *Validator {
	return &Validator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and maps failures to the domain validation error
// so the central error handler renders a 400 with field details.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
