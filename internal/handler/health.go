package handler

import (
	"net/http"

	"github.com/deppfellow/items-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthHandler answers liveness probes. The service has no dependencies
// to check, so a response means it is up.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
