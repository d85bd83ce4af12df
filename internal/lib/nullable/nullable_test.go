package nullable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	Description Nullable[string] `json:"description"`
}

func TestUnmarshalDistinguishesOmittedNullAndValue(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		set      bool
		null     bool
		expected string
	}{
		{name: "omitted", body: `{}`},
		{name: "null", body: `{"description": null}`, set: true, null: true},
		{name: "value", body: `{"description": "Updated"}`, set: true, expected: "Updated"},
		{name: "empty string", body: `{"description": ""}`, set: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p patch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			assert.Equal(t, tt.set, p.Description.Set)
			assert.Equal(t, tt.null, p.Description.Null)
			assert.Equal(t, tt.expected, p.Description.Value)
		})
	}
}

func TestUnmarshalRejectsWrongType(t *testing.T) {
	var p patch
	err := json.Unmarshal([]byte(`{"description": 12}`), &p)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
}

func TestPtr(t *testing.T) {
	assert.Nil(t, Nullable[string]{}.Ptr())
	assert.Nil(t, Null[string]().Ptr())

	v := Of("x").Ptr()
	require.NotNil(t, v)
	assert.Equal(t, "x", *v)
}

func TestMarshal(t *testing.T) {
	out, err := json.Marshal(patch{Description: Of("a")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":"a"}`, string(out))

	out, err = json.Marshal(patch{Description: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":null}`, string(out))
}
