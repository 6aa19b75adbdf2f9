// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"warden/internal/delivery/http/response"
	"warden/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for administrator-related handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// registeredAdmin is the sanitized projection returned on registration.
// The password hash never appears in any response body.
type registeredAdmin struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// loggedInAdmin is the identity block returned on login.
type loggedInAdmin struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type loginData struct {
	Admin       loggedInAdmin `json:"admin"`
	AccessToken string        `json:"accessToken"`
}

// Register handles the administrator registration request.
func (h *AdminHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterAdminInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	data := registeredAdmin{
		ID:        output.Admin.ID,
		Email:     output.Admin.Email,
		CreatedAt: output.Admin.CreatedAt,
	}

	return response.Success(c, http.StatusCreated, data, "Admin registered successfully")
}

// Login handles the administrator login request.
func (h *AdminHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	data := loginData{
		Admin: loggedInAdmin{
			ID:    output.Admin.ID,
			Email: output.Admin.Email,
		},
		AccessToken: output.AccessToken,
	}

	return response.Success(c, http.StatusOK, data, "Admin logged in successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Healthy(c, "Server is healthy and running!")
}
