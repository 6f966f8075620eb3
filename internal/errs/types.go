package errs

import (
	"net/http"
	"strings"
)

// Envelope status values.
//
// StatusFail marks an expected, client-caused outcome (4xx) and StatusError an
// unexpected server-side failure (5xx).
const (
	StatusFail  = "fail"
	StatusError = "error"
)

// FieldError represents a field-level validation error.
//
//	{ "field": "title", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the custom error type for API responses.
//
// It implements `error` and serializes directly into the response envelope.
// HTTPStatus never reaches the body; it selects the response status code.
type HTTPError struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Code    string       `json:"code,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`

	HTTPStatus int `json:"-"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
// It does not compare codes or statuses.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Status:     e.Status,
		Message:    message,
		Code:       e.Code,
		Errors:     e.Errors,
		HTTPStatus: e.HTTPStatus,
	}
}

// New builds an HTTPError for the given HTTP status, deriving the envelope
// status and a default machine code from it.
func New(httpStatus int, message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(httpStatus))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Status:     EnvelopeStatus(httpStatus),
		Message:    message,
		Code:       formattedCode,
		HTTPStatus: httpStatus,
	}
}

// EnvelopeStatus maps an HTTP status code to the envelope status string.
func EnvelopeStatus(httpStatus int) string {
	if httpStatus >= http.StatusInternalServerError {
		return StatusError
	}
	return StatusFail
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
