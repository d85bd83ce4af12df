package main

import (
	"fmt"

	"github.com/deppfellow/items-api/internal/config"
	"github.com/deppfellow/items-api/internal/handler"
	"github.com/deppfellow/items-api/internal/logger"
	"github.com/deppfellow/items-api/internal/repository"
	"github.com/deppfellow/items-api/internal/router"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// application is the fully wired process: server container plus router.
type application struct {
	server *server.Server
	router *echo.Echo
}

// newApplication wires repositories, services, handlers and the router
// around an already configured logger.
func newApplication(cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) (*application, error) {
	srv := server.New(cfg, log, loggerService)

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		return nil, fmt.Errorf("could not create services: %w", err)
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	return &application{server: srv, router: r}, nil
}
