// Package response renders handler results. Success bodies are the record itself;
// the request ID travels in the X-Request-Id header.
package response

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Code      string `json:"code"`             // Machine-readable error code, e.g. "VALIDATION_FAILED"
	Message   string `json:"message"`          // User-friendly error message
	Errors    any    `json:"errors,omitempty"` // Per-field failures, only for 4xx
	RequestID string `json:"request_id"`
}

// MessageResponse is a body carrying only a message
type MessageResponse struct {
	Message string `json:"message"`
}

// Success writes data as the response body
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Created writes a 201 with data as the body
func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// OK writes a 200 with data as the body
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Message writes a {"message": ...} body
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// Blob writes raw bytes with the given content type
func Blob(c echo.Context, contentType string, data []byte) error {
	return c.Blob(http.StatusOK, contentType, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Code:      errorCode,
		Message:   message,
		Errors:    details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), nil)
}

// HandleAppError renders application errors. Anything else is returned for the
// central error handler to log and report as a 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
