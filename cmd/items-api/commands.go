package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"runtime"
	"sort"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/deppfellow/items-api/internal/config"
	"github.com/deppfellow/items-api/internal/lib/utils"
	"github.com/deppfellow/items-api/internal/logger"
	"github.com/deppfellow/items-api/internal/openapi"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type serveFlags struct {
	host string
	port int
}

func newRootCmd() *cobra.Command {
	var flags serveFlags

	rootCmd := &cobra.Command{
		Use:           "items-api",
		Short:         "CRUD API for Items backed by an in-memory store",
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}
	addServeFlags(rootCmd, &flags)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}
	addServeFlags(serveCmd, &flags)

	rootCmd.AddCommand(
		serveCmd,
		newVersionCmd(),
		newOpenAPICmd(),
		newRoutesCmd(),
	)

	return rootCmd
}

func addServeFlags(cmd *cobra.Command, flags *serveFlags) {
	cmd.Flags().StringVar(&flags.host, "host", "", "listen host (overrides APP_SERVER__HOST)")
	cmd.Flags().IntVar(&flags.port, "port", 0, "listen port (overrides APP_SERVER__PORT)")
}

// loadConfig loads configuration and applies flag overrides.
func loadConfig(flags serveFlags) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if flags.host != "" {
		cfg.Server.Host = flags.host
	}
	if flags.port != 0 {
		if flags.port < 1 || flags.port > 65535 {
			return nil, fmt.Errorf("invalid port: %d", flags.port)
		}
		cfg.Server.Port = flags.port
	}

	return cfg, nil
}

func runServe(cmd *cobra.Command, flags serveFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	app, err := newApplication(cfg, &log, loggerService)
	if err != nil {
		loggerService.Shutdown()
		log.Error().Err(err).Msg("failed to initialize application")
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.server.Start()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			loggerService.Shutdown()
			log.Error().Err(err).Msg("server stopped unexpectedly")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}

func newVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if jsonOutput {
				return utils.WriteJSON(out, map[string]string{
					"version": Version,
					"commit":  Commit,
					"built":   BuildDate,
					"go":      runtime.Version(),
					"os":      runtime.GOOS + "/" + runtime.GOARCH,
				})
			}

			fmt.Fprintf(out, "items-api %s\n", Version)
			fmt.Fprintf(out, "  commit: %s\n", Commit)
			fmt.Fprintf(out, "  built:  %s\n", BuildDate)
			fmt.Fprintf(out, "  go:     %s\n", runtime.Version())
			fmt.Fprintf(out, "  os:     %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	return cmd
}

func newOpenAPICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			data, err := openapi.JSON(cmd.Context(), openapi.Info{
				Title:       cfg.Primary.AppName,
				Version:     cfg.Primary.Version,
				Description: cfg.Primary.Description,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the registered HTTP routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			log := zerolog.Nop()
			app, err := newApplication(cfg, &log, nil)
			if err != nil {
				return err
			}

			routes := app.router.Routes()
			sort.Slice(routes, func(i, j int) bool {
				if routes[i].Path != routes[j].Path {
					return routes[i].Path < routes[j].Path
				}
				return routes[i].Method < routes[j].Method
			})

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH")
			for _, route := range routes {
				fmt.Fprintf(w, "%s\t%s\n", route.Method, route.Path)
			}
			return w.Flush()
		},
	}
}
