package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/deppfellow/items-api/internal/lib/nullable"
	"github.com/deppfellow/items-api/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestItemJSON(t *testing.T) {
	out, err := json.Marshal(Item{ID: 1, Name: "Sample", Description: ptr("Test item")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Sample","description":"Test item"}`, string(out))

	out, err = json.Marshal(Item{ID: 2, Name: "Gadget"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"name":"Gadget","description":null}`, string(out))
}

func TestItemClone(t *testing.T) {
	original := Item{ID: 1, Name: "Sample", Description: ptr("Test item")}
	clone := original.Clone()

	*clone.Description = "changed"
	assert.Equal(t, "Test item", *original.Description)
}

func TestCreateItemRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateItemRequest
		wantTag string
	}{
		{name: "valid", req: CreateItemRequest{Name: "Sample", Description: ptr("Test item")}},
		{name: "valid without description", req: CreateItemRequest{Name: "Sample"}},
		{name: "empty name", req: CreateItemRequest{Name: ""}, wantTag: "required"},
		{name: "name too long", req: CreateItemRequest{Name: strings.Repeat("a", NameMaxLength+1)}, wantTag: "max"},
		{name: "name at limit", req: CreateItemRequest{Name: strings.Repeat("a", NameMaxLength)}},
		{name: "description too long", req: CreateItemRequest{Name: "a", Description: ptr(strings.Repeat("d", DescriptionMaxLength+1))}, wantTag: "max"},
		{name: "empty description allowed", req: CreateItemRequest{Name: "a", Description: ptr("")}},
		{name: "multibyte name counts characters", req: CreateItemRequest{Name: strings.Repeat("é", NameMaxLength)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantTag == "" {
				assert.NoError(t, err)
				return
			}

			var validationErrors validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrors)
			assert.Equal(t, tt.wantTag, validationErrors[0].Tag())
		})
	}
}

func TestUpdateItemRequestValidate(t *testing.T) {
	t.Run("empty patch is valid", func(t *testing.T) {
		assert.NoError(t, (&UpdateItemRequest{ID: 1}).Validate())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		err := (&UpdateItemRequest{ID: 1, Name: nullable.Of("")}).Validate()

		var validationErrors validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		assert.Equal(t, "name", validationErrors[0].Field())
		assert.Equal(t, "min", validationErrors[0].Tag())
	})

	t.Run("null name rejected", func(t *testing.T) {
		err := (&UpdateItemRequest{ID: 1, Name: nullable.Null[string]()}).Validate()

		var custom validation.CustomValidationErrors
		require.ErrorAs(t, err, &custom)
		assert.Equal(t, "name", custom[0].Field)
	})

	t.Run("null description allowed", func(t *testing.T) {
		assert.NoError(t, (&UpdateItemRequest{ID: 1, Description: nullable.Null[string]()}).Validate())
	})

	t.Run("non positive id rejected", func(t *testing.T) {
		err := (&UpdateItemRequest{ID: 0}).Validate()

		var validationErrors validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		assert.Equal(t, "id", validationErrors[0].Field())
	})
}

func TestUpdateItemRequestPatch(t *testing.T) {
	req := UpdateItemRequest{ID: 3, Description: nullable.Of("Updated")}
	patch := req.Patch()

	assert.Nil(t, patch.Name)
	assert.True(t, patch.Description.HasValue())
	assert.Equal(t, "Updated", patch.Description.Value)
}
