package errs

import (
	"net/http"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code optionally overrides the default "BAD_REQUEST" and errors carries
// per-field validation failures.
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	err := New(http.StatusBadRequest, message, code)
	err.Errors = errors
	return err
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	return New(http.StatusNotFound, message, code)
}

// NewConflictError creates a 409 Conflict HTTPError, used for duplicate keys.
func NewConflictError(message string, code *string) *HTTPError {
	return New(http.StatusConflict, message, code)
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text; callers that want to surface a
// diagnostic use WithMessage.
func NewInternalServerError() *HTTPError {
	return New(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), nil)
}

// ValidationError converts a generic validation error into a 400 Bad Request.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), nil, nil)
}
