package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard sentinel errors for common cases.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrRouteNotFound = errors.New("route not found")
	ErrInternal      = errors.New("internal error")
)

// DefaultMessage is shown whenever an error carries no message of its own.
// Internals are never surfaced to a page.
const DefaultMessage = "Something went wrong"

// AppError represents a structured application error with HTTP status mapping.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound creates the error for a resource lookup that resolved nothing.
// Lookup misses surface as 400, not 404; the routes depend on this status.
func NotFound(resource string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("No %s found", resource),
		Status:  http.StatusBadRequest,
		Err:     ErrNotFound,
	}
}

// ValidationFailed creates a 400 error carrying the joined field complaints.
func ValidationFailed(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_FAILED",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidInput,
	}
}

// InvalidInput creates a 400 error.
func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidInput,
	}
}

// RouteNotFound creates the 404 error for an unmatched method/path.
func RouteNotFound() *AppError {
	return &AppError{
		Code:    "ROUTE_NOT_FOUND",
		Message: "Page not found",
		Status:  http.StatusNotFound,
		Err:     ErrRouteNotFound,
	}
}

// Internal creates a 500 error. The wrapped cause is kept for logs only.
func Internal(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: DefaultMessage,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrRouteNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-facing message for the given error, falling back
// to DefaultMessage so internal error text never reaches a page.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return DefaultMessage
}
