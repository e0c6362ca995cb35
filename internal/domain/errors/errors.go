package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// FieldError describes one failed validation rule on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches errors carrying the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.httpCode == t.httpCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// NewValidationError returns ErrValidationFailed carrying the failed fields.
func NewValidationError(fields []FieldError) *BaseError {
	return ErrValidationFailed.WithDetails(fields)
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed")
	ErrInvalidInput     = NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Invalid request body")

	// User-related errors
	ErrUserNotFound      = NewBaseError(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserAlreadyExists = NewBaseError(http.StatusConflict, "USER_ALREADY_EXISTS", "Email is already registered")

	// Authentication-related errors
	ErrLoginUserNotFound   = NewBaseError(http.StatusUnauthorized, "USER_NOT_FOUND", "User not found")
	ErrWrongPassword       = NewBaseError(http.StatusUnauthorized, "WRONG_PASSWORD", "Wrong Password!")
	ErrRefreshTokenMissing = NewBaseError(http.StatusUnauthorized, "REFRESH_TOKEN_MISSING", "refreshToken is not defined")
	ErrUnauthorized        = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
	ErrTokenMissing        = NewBaseError(http.StatusUnauthorized, "TOKEN_MISSING", "Authorization token is missing")
	ErrTokenInvalid        = NewBaseError(http.StatusUnauthorized, "TOKEN_INVALID", "Invalid or expired token")
	ErrPasswordHashFailed  = NewBaseError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Something is wrong")
	ErrTokenIssueFailed    = NewBaseError(http.StatusInternalServerError, "TOKEN_ISSUE_FAILED", "Something is wrong")

	// Authorization-related errors
	ErrNotAdmin  = NewBaseError(http.StatusForbidden, "NOT_ADMIN", "You are not an admin")
	ErrForbidden = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Access denied")

	// Resource errors
	ErrTaskNotFound    = NewBaseError(http.StatusNotFound, "TASK_NOT_FOUND", "Task not found")
	ErrProductNotFound = NewBaseError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
	ErrOrderNotFound   = NewBaseError(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	ErrFileNotFound    = NewBaseError(http.StatusNotFound, "FILE_NOT_FOUND", "File not found")

	// General errors
	ErrInternalError = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Something is wrong")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error for errors.Is checks.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Something is wrong"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
