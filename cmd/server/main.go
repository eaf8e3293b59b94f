// Package main is the entry point for the flight search service.
//
//	@title			Flight Search API
//	@version		0.0.1
//	@description	Flight search and booking services with a uniform error envelope.
//
//	@contact.name	API Support
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	// Import generated docs for swagger
	_ "github.com/flight-search/flightsearch-app/docs"

	"github.com/flight-search/flightsearch-app/internal/app"
	"github.com/flight-search/flightsearch-app/internal/config"
	"github.com/flight-search/flightsearch-app/internal/infrastructure/logger"
	"github.com/flight-search/flightsearch-app/internal/infrastructure/tracing"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.Caller,
		ServiceName:  cfg.App.Name,
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Str("version", cfg.Version().String()).
		Int("port", cfg.Server.Port).
		Str("tracing", cfg.Tracing.Exporter).
		Msg("Configuration loaded")

	shutdownTracing, err := tracing.Init(context.Background(), tracing.Config{
		Exporter:       cfg.Tracing.Exporter,
		Endpoint:       cfg.Tracing.Endpoint,
		Insecure:       cfg.Tracing.Insecure,
		SampleRatio:    cfg.Tracing.SampleRatio,
		ServiceName:    cfg.App.Name,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Env,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise tracing")
	}

	e, err := app.New(cfg, log, app.Options{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build server")
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, cfg, log, shutdownTracing)
}

// gracefulShutdown waits for SIGINT or SIGTERM, drains the server and
// flushes pending spans.
func gracefulShutdown(e *echo.Echo, cfg *config.Config, log *logger.Logger, shutdownTracing tracing.ShutdownFunc) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Error().Err(err).Msg("Error flushing traces")
	}

	log.Info().Msg("Server stopped")
}
