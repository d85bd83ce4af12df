// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from `.env.local` and `.env`), loads them into structured Go types and
// validates them so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from dotenv files).
//   - Map env vars into a structured Go config (structs).
//   - Validate values so the app fails fast on bad config.
//   - Provide defaults for every setting so a bare environment works.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the APP_ prefix. A double underscore separates a
	section from its key so keys may keep single underscores:

	  APP_SERVER__PORT          -> server.port          -> Config.Server.Port
	  APP_CORS__ALLOW_ORIGINS   -> cors.allow_origins   -> Config.CORS.AllowOrigins
	  APP_PRIMARY__APP_NAME     -> primary.app_name     -> Config.Primary.AppName

	List values are comma separated: APP_CORS__ALLOW_ORIGINS=https://a.dev,https://b.dev
*/

// listKeys are the koanf paths decoded as comma separated lists. Other
// values are kept whole so free text may contain commas.
var listKeys = map[string]bool{
	"cors.allow_origins": true,
	"cors.allow_methods": true,
	"cors.allow_headers": true,
}

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "APP_"

// DotenvFiles are loaded in order when present. godotenv never overrides a
// variable that is already set, so earlier files win over later ones.
var DotenvFiles = []string{".env.local", ".env"}

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	CORS          CORSConfig           `koanf:"cors"`
	Docs          DocsConfig           `koanf:"docs"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the application and its runtime environment.
type Primary struct {
	AppName     string `koanf:"app_name" validate:"required"`
	Description string `koanf:"description"`
	Version     string `koanf:"version" validate:"required"`
	Env         string `koanf:"env" validate:"required,oneof=development staging production local test"`
	Debug       bool   `koanf:"debug"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Host            string `koanf:"host"`
	Port            int    `koanf:"port" validate:"required,min=1,max=65535"`
	ReadTimeout     int    `koanf:"read_timeout" validate:"min=0"`
	WriteTimeout    int    `koanf:"write_timeout" validate:"min=0"`
	IdleTimeout     int    `koanf:"idle_timeout" validate:"min=0"`
	ShutdownTimeout int    `koanf:"shutdown_timeout" validate:"min=1"`

	// RateLimit is the sustained requests per second allowed per client IP.
	// Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
	RateBurst int     `koanf:"rate_burst" validate:"min=0"`
}

// CORSConfig lists what browsers on other origins may do.
// "*" is accepted in every list.
type CORSConfig struct {
	AllowOrigins     []string `koanf:"allow_origins"`
	AllowMethods     []string `koanf:"allow_methods"`
	AllowHeaders     []string `koanf:"allow_headers"`
	AllowCredentials bool     `koanf:"allow_credentials"`
}

// DocsConfig controls the OpenAPI document and the interactive docs pages.
type DocsConfig struct {
	Enabled    bool   `koanf:"enabled"`
	DocsURL    string `koanf:"docs_url" validate:"omitempty,startswith=/"`
	RedocURL   string `koanf:"redoc_url" validate:"omitempty,startswith=/"`
	OpenAPIURL string `koanf:"openapi_url" validate:"omitempty,startswith=/"`
}

// Address returns host:port for the HTTP listener.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DefaultConfig returns the configuration used when no variable is set.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			AppName:     "Items API",
			Description: "A minimal CRUD API for Items backed by an in-memory store.",
			Version:     "0.1.0",
			Env:         "development",
			Debug:       true,
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			ReadTimeout:     30,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
			RateBurst:       20,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{"*"},
			AllowHeaders:     []string{"*"},
			AllowCredentials: true,
		},
		Docs: DocsConfig{
			Enabled:    true,
			DocsURL:    "/docs",
			RedocURL:   "/redoc",
			OpenAPIURL: "/openapi.json",
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables, unmarshals it on
// top of DefaultConfig, validates it and returns the result.
//
// Behavior summary:
//   - Loads dotenv files when present
//   - Loads env vars with prefix APP_, "__" nesting sections
//   - Unmarshals into Config (defaults survive for unset keys)
//   - Validates the struct tags, then the observability block
func LoadConfig() (*Config, error) {
	if err := loadDotenv(DotenvFiles...); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := DefaultConfig()

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary block so
	// logs and APM agree with the rest of the app.
	mainConfig.Observability.ServiceName = mainConfig.Primary.AppName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// envKeyValue maps APP_SECTION__KEY to section.key and splits list values.
func envKeyValue(name, value string) (string, interface{}) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(name, EnvPrefix)), "__", ".")
	if !listKeys[key] {
		return key, value
	}

	items := make([]string, 0, strings.Count(value, ",")+1)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// loadDotenv loads each file that exists; missing files are skipped.
func loadDotenv(files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("could not load %s: %w", file, err)
		}
	}
	return nil
}
