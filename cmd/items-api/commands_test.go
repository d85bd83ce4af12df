package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/items-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestVersionCmd(t *testing.T) {
	out := execute(t, "version")
	assert.Contains(t, out, "items-api "+Version)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(execute(t, "version", "--json")), &info))
	assert.Equal(t, Version, info["version"])
}

func TestOpenAPICmd(t *testing.T) {
	t.Setenv("APP_PRIMARY__VERSION", "1.2.3")

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(execute(t, "openapi")), &doc))
	assert.Equal(t, "1.2.3", doc["info"].(map[string]any)["version"])
}

func TestRoutesCmd(t *testing.T) {
	out := execute(t, "routes")

	for _, want := range []string{"/health", "/api/items/", "/api/items/:id", "/openapi.json", "PATCH", "DELETE"} {
		assert.Contains(t, out, want)
	}
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	cfg, err := loadConfig(serveFlags{host: "127.0.0.1", port: 9090})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Address())

	_, err = loadConfig(serveFlags{port: 70000})
	assert.Error(t, err)
}

func TestNewApplication_SetsListenAddress(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 8123

	log := zerolog.Nop()
	app, err := newApplication(cfg, &log, nil)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8123", app.server.Addr())
}
