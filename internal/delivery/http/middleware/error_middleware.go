package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"warden/config"
	"warden/internal/delivery/http/response"
	domainerrors "warden/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware funnels every error the handlers return through one place,
// implementing the uniform error envelope.
type ErrorMiddleware struct {
	logger    *slog.Logger
	showStack bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:    logger,
		showStack: cfg.Env.Debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// Echo's HTTPError covers unmatched routes and method mismatches.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		if httpErr.Code == http.StatusNotFound {
			message = fmt.Sprintf("Not Found - %s", c.Request().URL.Path)
		}
		_ = response.Fallback(c, httpErr.Code, message, "")

		return
	}

	// Anything else is unexpected; log it and return the generic envelope.
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	var stack string
	if m.showStack {
		// pkg/errors annotates wrapped errors with stack traces; %+v prints them.
		stack = fmt.Sprintf("%+v", err)
	}

	_ = response.Fallback(c, http.StatusInternalServerError, "An internal server error occurred.", stack)
}
