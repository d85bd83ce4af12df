package router

import (
	"github.com/deppfellow/items-api/internal/handler"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not part of the
// item API: health and, unless disabled, the OpenAPI document and its UIs.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/health", h.Health.CheckHealth)

	docs := s.Config.Docs
	if !docs.Enabled {
		return
	}

	if docs.OpenAPIURL != "" {
		r.GET(docs.OpenAPIURL, h.OpenAPI.ServeOpenAPIJSON)
	}
	if docs.DocsURL != "" {
		r.GET(docs.DocsURL, h.OpenAPI.ServeSwaggerUI)
	}
	if docs.RedocURL != "" {
		r.GET(docs.RedocURL, h.OpenAPI.ServeRedoc)
	}
}
