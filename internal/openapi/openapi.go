// Package openapi holds the OpenAPI 3 description of the HTTP API.
//
// The document is embedded at build time, loaded and validated with
// kin-openapi, and its info block is filled in from configuration.
package openapi

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var document []byte

// Info overrides the document's info block. Empty fields keep the embedded value.
type Info struct {
	Title       string
	Version     string
	Description string
}

// Load parses and validates the embedded document.
func Load(ctx context.Context, info Info) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}

	if info.Title != "" {
		doc.Info.Title = info.Title
	}
	if info.Version != "" {
		doc.Info.Version = info.Version
	}
	if info.Description != "" {
		doc.Info.Description = info.Description
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	return doc, nil
}

// JSON returns the validated document rendered as indented JSON.
func JSON(ctx context.Context, info Info) ([]byte, error) {
	doc, err := Load(ctx, info)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode OpenAPI document: %w", err)
	}
	return data, nil
}
