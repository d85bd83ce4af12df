package errs

import "strings"

// Location prefixes used in FieldError.Loc.
const (
	LocationBody  = "body"
	LocationPath  = "path"
	LocationQuery = "query"
)

// FieldError represents a single invalid input value.
// Example:
//
//	{ "loc": ["body", "name"], "msg": "must be at least 1 characters", "type": "min" }
type FieldError struct {
	// Loc is where the value came from followed by the field name.
	Loc []string `json:"loc"`

	// Msg is the human-readable error message.
	Msg string `json:"msg"`

	// Type is the machine-readable rule that failed (e.g. "required", "max").
	Type string `json:"type"`
}

// NewFieldError builds a FieldError located at source.field.
func NewFieldError(source, field, msg, typ string) FieldError {
	loc := []string{source}
	if field != "" {
		loc = append(loc, field)
	}

	return FieldError{Loc: loc, Msg: msg, Type: typ}
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error().
// Fields:
//   - Code: machine-friendly error code (e.g. "NOT_FOUND").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Errors: list of per-field errors (validation).
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"errors"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// This does NOT compare Code/Status; it only matches the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// Detail returns the value clients receive under the "detail" key:
// the field errors when there are any, the message otherwise.
func (e *HTTPError) Detail() any {
	if len(e.Errors) > 0 {
		return e.Errors
	}
	return e.Message
}

// ErrorResponse is the JSON body written for every failed request.
//
//	{"detail": "Item not found"}
//	{"detail": [{"loc": ["body", "name"], "msg": "is required", "type": "required"}]}
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Unprocessable Entity" -> "UNPROCESSABLE_ENTITY"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
