package middleware

import (
	"net/http"

	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups the middleware applied to every route together
// with the global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware configured from the cors config block.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	cfg := global.server.Config.CORS

	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		AllowCredentials: cfg.AllowCredentials,
		ExposeHeaders:    []string{RequestIDHeader},
	})
}

// RequestLogger writes one "API" log line per request with a level derived
// from the final status code.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			// The error handler has not written the response yet when a handler
			// fails, so v.Status may still read 200.
			// See https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			statusCode := v.Status
			if v.Error != nil {
				statusCode, _ = resolveError(v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover turns panics into errors so they reach GlobalErrorHandler as a 500.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure adds the standard security headers.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler renders every error as {"detail": ...}.
//
//   - *errs.HTTPError keeps its status; field errors become the detail list.
//   - Echo errors (unknown route, wrong method, oversized body) keep their
//     status with the standard status text.
//   - Anything else is an unexpected failure and becomes a bare 500.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	status, detail := resolveError(err)

	logger := GetLogger(c)

	var e *zerolog.Event
	if status >= 500 {
		e = logger.Error().Stack()
	} else {
		e = logger.Debug()
	}
	e.Err(err).Int("status", status).Msg("request failed")

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}

	_ = c.JSON(status, errs.ErrorResponse{Detail: detail})
}

// resolveError maps err to the status code and detail sent to the client.
func resolveError(err error) (int, any) {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status, httpErr.Detail()
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		status := echoErr.Code
		if http.StatusText(status) == "" {
			status = http.StatusInternalServerError
		}
		return status, http.StatusText(status)
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
