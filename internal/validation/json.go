package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrTrailingData is returned when a JSON body carries anything after its
// first value.
var ErrTrailingData = errors.New("unexpected data after JSON value")

// JSONSerializer is the Echo JSON serializer used by the API. Encoding is
// Echo's; decoding rejects bodies that hold more than one JSON value.
//
//	e.JSONSerializer = validation.JSONSerializer{}
type JSONSerializer struct {
	echo.DefaultJSONSerializer
}

// Deserialize decodes exactly one JSON value from the request body into i.
func (s JSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	dec := json.NewDecoder(c.Request().Body)

	if err := dec.Decode(i); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Unmarshal type error: expected=%v, got=%v, field=%v", ute.Type, ute.Value, ute.Field)).SetInternal(err)
		}
		var se *json.SyntaxError
		if errors.As(err, &se) {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Syntax error: offset=%v, error=%v", se.Offset, se.Error())).SetInternal(err)
		}
		return err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return echo.NewHTTPError(http.StatusBadRequest, ErrTrailingData.Error()).SetInternal(ErrTrailingData)
	}

	return nil
}
