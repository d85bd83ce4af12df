package openapi

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedDocumentIsValid(t *testing.T) {
	doc, err := Load(context.Background(), Info{})
	require.NoError(t, err)

	assert.Equal(t, "Items API", doc.Info.Title)
	require.NotNil(t, doc.Paths.Find("/api/items/"))
	require.NotNil(t, doc.Paths.Find("/api/items/{id}"))
	require.NotNil(t, doc.Paths.Find("/health"))

	item := doc.Paths.Find("/api/items/{id}")
	assert.NotNil(t, item.Get)
	assert.NotNil(t, item.Patch)
	assert.NotNil(t, item.Delete)
}

func TestLoad_InfoOverrides(t *testing.T) {
	doc, err := Load(context.Background(), Info{Title: "Shop", Version: "2.0.0"})
	require.NoError(t, err)

	assert.Equal(t, "Shop", doc.Info.Title)
	assert.Equal(t, "2.0.0", doc.Info.Version)
	assert.NotEmpty(t, doc.Info.Description)
}

func TestJSON(t *testing.T) {
	data, err := JSON(context.Background(), Info{Version: "9.9.9"})
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "3.0.3", body["openapi"])
	assert.Equal(t, "9.9.9", body["info"].(map[string]any)["version"])
}
