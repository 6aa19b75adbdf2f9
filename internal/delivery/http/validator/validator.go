// Package validator wires go-playground/validator into Echo so request DTOs
// are validated explicitly before any business logic runs.
package validator

import (
	domainerrors "warden/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	validate *validator.Validate
}

// New builds the Echo Validator used by every handler's c.Validate call.
func New() echo.Validator {
	return &requestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Struct-tag failures surface as the
// missing-credentials AppError so the boundary renders a 400 envelope.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrMissingCredentials.WrapMessage("request validation failed")
	}

	return nil
}
