package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the unified API response structure for the admin endpoints.
type Response struct {
	Success bool       `json:"success"`
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "INVALID_CREDENTIALS"
	Details string `json:"details,omitempty"` // Detailed error description
}

// StatusResponse is the envelope used by the health check and by the
// top-level error fallback (unmatched routes, unexpected failures).
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Healthy renders the health check envelope.
func Healthy(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, StatusResponse{
		Status:  "success",
		Message: message,
	})
}

// Fallback renders the generic error envelope used for unmatched routes and
// unexpected failures. The stack is only filled when debug is enabled.
func Fallback(c echo.Context, statusCode int, message string, stack string) error {
	return c.JSON(statusCode, StatusResponse{
		Status:  "error",
		Message: message,
		Stack:   stack,
	})
}
