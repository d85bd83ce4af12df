package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/lib/nullable"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required,max=100"`)
// - Implement Validate() error that calls validation.Struct(req)
// - Return validator.ValidationErrors (or CustomValidationErrors for custom cases)
type Validatable interface {
	Validate() error
}

// BodyRequired is implemented by payloads that must arrive with a JSON
// body. An empty body or a bare null is then rejected as missing instead
// of binding to the zero value.
type BodyRequired interface {
	RequiresBody() bool
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Source  string
	Field   string
	Message string
	Type    string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by the name the client used: path param first, then query, then json.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"param", "query", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return ""
	})

	// Validate the inner value of a Nullable; omitted and null become a nil pointer
	// so that `omitnil` skips them.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if n, ok := field.Interface().(nullable.Nullable[string]); ok {
			return n.Ptr()
		}
		return nil
	}, nullable.Nullable[string]{})

	return v
}

// Struct runs the shared validator against s.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) c.Bind(payload) populates the struct from path params, query and JSON body.
// 2) payload.Validate() applies validation rules.
// 3) Returns *errs.HTTPError (422) with field-level errors if either step fails.
//
// NOTE: payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if p, ok := payload.(BodyRequired); ok && p.RequiresBody() {
		if err := requireBody(c); err != nil {
			return err
		}
	}

	if err := c.Bind(payload); err != nil {
		return bindError(c, err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewUnprocessableEntityError(msg, fieldErrors)
	}

	return nil
}

// requireBody fails with a 422 when the request body is empty or null.
// The body is buffered and restored for the binder.
func requireBody(c echo.Context) error {
	req := c.Request()

	var raw []byte
	if req.Body != nil {
		var err error
		if raw, err = io.ReadAll(req.Body); err != nil {
			return errs.ValidationError(errs.LocationBody, "", fmt.Errorf("could not read request body: %w", err))
		}
		_ = req.Body.Close()
	}
	req.Body = io.NopCloser(bytes.NewReader(raw))
	req.ContentLength = int64(len(raw))

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{
			errs.NewFieldError(errs.LocationBody, "", "Field required", "missing"),
		})
	}

	return nil
}

// bindError maps echo binding failures onto 422 field errors.
//
// Echo wraps the decoder/strconv errors as the Internal of an *echo.HTTPError,
// which unwraps, so errors.As reaches them.
func bindError(c echo.Context, err error) *errs.HTTPError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{
			errs.NewFieldError(errs.LocationBody, typeErr.Field, "must be a valid "+jsonKind(typeErr.Type), "type_error"),
		})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, ErrTrailingData) {
		return errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{
			errs.NewFieldError(errs.LocationBody, "", "invalid JSON body", "json_invalid"),
		})
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		field := ""
		for _, name := range c.ParamNames() {
			if c.Param(name) == numErr.Num {
				field = name
				break
			}
		}
		return errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{
			errs.NewFieldError(errs.LocationPath, field, "must be a valid integer", "int_parsing"),
		})
	}

	return errs.ValidationError(errs.LocationBody, "", errors.New("could not parse request"))
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(v, err)
	}
	return "", nil
}

func extractValidationError(payload interface{}, err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.NewFieldError(err.Source, err.Field, err.Message, err.Type))
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{
			errs.NewFieldError(errs.LocationBody, "", err.Error(), "value_error"),
		}
	}

	for _, err := range validationErrors {
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// strings: minimum length, numbers: minimum value
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must have at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", err.Field(), err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", err.Field(), err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.NewFieldError(
			locationOf(payload, err.StructField()),
			err.Field(),
			msg,
			err.Tag(),
		))
	}

	return "Validation failed", fieldErrors
}

// locationOf reports where the struct field is bound from.
func locationOf(payload interface{}, structField string) string {
	typ := reflect.TypeOf(payload)
	for typ != nil && typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return errs.LocationBody
	}

	field, ok := typ.FieldByName(structField)
	if !ok {
		return errs.LocationBody
	}

	switch {
	case field.Tag.Get("param") != "":
		return errs.LocationPath
	case field.Tag.Get("query") != "":
		return errs.LocationQuery
	default:
		return errs.LocationBody
	}
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}

	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
