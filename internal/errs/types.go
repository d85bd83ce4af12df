package errs

import (
	"net/http"
)

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// code is an optional custom code; nil means "NOT_FOUND".
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewUnprocessableEntityError creates a 422 HTTPError carrying field errors.
//
// This is what every rejected payload or path parameter turns into.
func NewUnprocessableEntityError(message string, errors []FieldError) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnprocessableEntity)),
		Message: message,
		Status:  http.StatusUnprocessableEntity,
		Errors:  errors,
	}
}

// NewTooManyRequestsError creates a 429 HTTPError.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message: message,
		Status:  http.StatusTooManyRequests,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the real internal error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// ValidationError converts an input error located at source.field into a 422 HTTPError.
//
//	return errs.ValidationError(errs.LocationBody, "", err)
func ValidationError(source, field string, err error) *HTTPError {
	return NewUnprocessableEntityError("Validation failed", []FieldError{
		NewFieldError(source, field, err.Error(), "value_error"),
	})
}
