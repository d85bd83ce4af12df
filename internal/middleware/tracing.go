package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/items-api/internal/server"
)

// TracingMiddleware owns the New Relic Echo middleware.
//
// nrApp is nil when the agent is disabled, in which case both middlewares
// pass requests through untouched.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware starts a transaction per request and stores it in the
// request context for newrelic.FromContext.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing adds request attributes to the transaction and notices
// handler errors. Must run after NewRelicMiddleware and RequestID.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("http.user_agent", c.Request().UserAgent())
			txn.AddAttribute("service.version", tm.server.Config.Primary.Version)

			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}
			if op := Operation(c); op != "" {
				txn.AddAttribute("item.operation", op)
			}
			if itemID := c.Param("id"); itemID != "" {
				txn.AddAttribute("item.id", itemID)
			}

			err := next(c)
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			txn.AddAttribute("http.status_code", c.Response().Status)

			return err
		}
	}
}

// Operation names the item operation served by the matched route, or ""
// outside the items API.
func Operation(c echo.Context) string {
	method := c.Request().Method

	switch c.Path() {
	case "/api/items", "/api/items/":
		switch method {
		case http.MethodGet:
			return "list_items"
		case http.MethodPost:
			return "create_item"
		}
	case "/api/items/:id":
		switch method {
		case http.MethodGet:
			return "get_item"
		case http.MethodPatch:
			return "update_item"
		case http.MethodDelete:
			return "delete_item"
		}
	}

	return ""
}
