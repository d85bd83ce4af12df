package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/items-api/internal/config"
	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, out *bytes.Buffer) *server.Server {
	t.Helper()

	log := zerolog.New(out)
	return server.New(config.DefaultConfig(), &log, nil)
}

func newTestEcho(s *server.Server) *echo.Echo {
	mw := NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler
	e.Use(RequestID(), mw.ContextEnhancer.EnhanceContext(), mw.RateLimit.Limit())
	return e
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "detail")
	return body["detail"]
}

func TestRequestID(t *testing.T) {
	e := newTestEcho(newTestServer(t, &bytes.Buffer{}))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generated when missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := rec.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("reused when valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("replaced when malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "bad id "+strings.Repeat("x", 200))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
	})
}

func TestGlobalErrorHandler(t *testing.T) {
	e := newTestEcho(newTestServer(t, &bytes.Buffer{}))
	e.GET("/missing", func(c echo.Context) error {
		return errs.NewNotFoundError("Item not found", nil)
	})
	e.GET("/invalid", func(c echo.Context) error {
		return errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{
			errs.NewFieldError(errs.LocationBody, "name", "is required", "missing"),
		})
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("connection reset")
	})
	e.GET("/panic", func(c echo.Context) error {
		panic("unexpected")
	}, NewGlobalMiddlewares(newTestServer(t, &bytes.Buffer{})).Recover())

	tests := []struct {
		name   string
		method string
		path   string
		status int
		detail any
	}{
		{"domain not found", http.MethodGet, "/missing", http.StatusNotFound, "Item not found"},
		{"unknown route", http.MethodGet, "/nowhere", http.StatusNotFound, "Not Found"},
		{"wrong method", http.MethodPut, "/missing", http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"unexpected error", http.MethodGet, "/boom", http.StatusInternalServerError, "Internal Server Error"},
		{"panic", http.MethodGet, "/panic", http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.detail, decodeDetail(t, rec))
		})
	}

	t.Run("validation list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/invalid", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t,
			`{"detail":[{"loc":["body","name"],"msg":"is required","type":"missing"}]}`,
			rec.Body.String())
	})
}

func TestContextEnhancer_LoggerInRequestContext(t *testing.T) {
	var out bytes.Buffer
	e := newTestEcho(newTestServer(t, &out))
	e.GET("/log", func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from service")
		GetLogger(c).Info().Msg("from handler")
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/log", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	e.ServeHTTP(httptest.NewRecorder(), req)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, `"request_id":"req-42"`)
		assert.Contains(t, line, `"path":"/log"`)
	}
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, &bytes.Buffer{})
	s.Config.Server.RateLimit = 0.001
	s.Config.Server.RateBurst = 1

	e := newTestEcho(s)
	e.GET("/limited", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too Many Requests", decodeDetail(t, rec))

	for i := 0; i < 3; i++ {
		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimit_DisabledByDefault(t *testing.T) {
	rl := NewRateLimitMiddleware(newTestServer(t, &bytes.Buffer{}))
	assert.False(t, rl.Enabled())
}

func TestOperation(t *testing.T) {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return c.String(http.StatusOK, Operation(c))
		}
	})
	noop := func(c echo.Context) error { return nil }
	e.GET("/api/items/", noop)
	e.POST("/api/items/", noop)
	e.GET("/api/items", noop)
	e.GET("/api/items/:id", noop)
	e.PATCH("/api/items/:id", noop)
	e.DELETE("/api/items/:id", noop)
	e.GET("/health", noop)

	tests := []struct {
		method string
		path   string
		op     string
	}{
		{http.MethodGet, "/api/items/", "list_items"},
		{http.MethodGet, "/api/items", "list_items"},
		{http.MethodPost, "/api/items/", "create_item"},
		{http.MethodGet, "/api/items/7", "get_item"},
		{http.MethodPatch, "/api/items/7", "update_item"},
		{http.MethodDelete, "/api/items/7", "delete_item"},
		{http.MethodGet, "/health", ""},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.op, rec.Body.String(), tt.method+" "+tt.path)
	}
}
