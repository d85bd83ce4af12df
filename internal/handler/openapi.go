package handler

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sync"

	"github.com/deppfellow/items-api/internal/openapi"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

var docsTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// OpenAPIHandler serves the OpenAPI document and the two documentation UIs.
//
// The document is built once, on first request, from the embedded
// description and the primary config block. It depends on nothing in the
// request, so it is built under a background context.
type OpenAPIHandler struct {
	Handler

	once     sync.Once
	document []byte
	err      error
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// Info returns the document info derived from configuration.
func (h *OpenAPIHandler) Info() openapi.Info {
	primary := h.server.Config.Primary
	return openapi.Info{
		Title:       primary.AppName,
		Version:     primary.Version,
		Description: primary.Description,
	}
}

// ServeOpenAPIJSON returns the OpenAPI document.
func (h *OpenAPIHandler) ServeOpenAPIJSON(c echo.Context) error {
	h.once.Do(func() {
		h.document, h.err = openapi.JSON(context.Background(), h.Info())
	})
	if h.err != nil {
		return fmt.Errorf("failed to build OpenAPI document: %w", h.err)
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, h.document)
}

// ServeSwaggerUI serves the interactive Swagger UI page.
func (h *OpenAPIHandler) ServeSwaggerUI(c echo.Context) error {
	return h.render(c, "swagger.html")
}

// ServeRedoc serves the ReDoc page.
func (h *OpenAPIHandler) ServeRedoc(c echo.Context) error {
	return h.render(c, "redoc.html")
}

func (h *OpenAPIHandler) render(c echo.Context, name string) error {
	var buf bytes.Buffer
	err := docsTemplates.ExecuteTemplate(&buf, name, map[string]string{
		"Title":      h.server.Config.Primary.AppName,
		"OpenAPIURL": h.server.Config.Docs.OpenAPIURL,
	})
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	// Docs pages must reflect the running build.
	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
