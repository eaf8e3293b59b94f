// Package app assembles the HTTP server from configuration: the catalogue,
// the use cases, the middleware chain and the error handler.
package app

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/flight-search/flightsearch-app/internal/adapter/catalog"
	flighthttp "github.com/flight-search/flightsearch-app/internal/adapter/http"
	"github.com/flight-search/flightsearch-app/internal/adapter/http/middleware"
	"github.com/flight-search/flightsearch-app/internal/apperror/classifier"
	"github.com/flight-search/flightsearch-app/internal/config"
	"github.com/flight-search/flightsearch-app/internal/domain"
	"github.com/flight-search/flightsearch-app/internal/infrastructure/logger"
	"github.com/flight-search/flightsearch-app/internal/infrastructure/timeutil"
	"github.com/flight-search/flightsearch-app/internal/infrastructure/tracing"
	"github.com/flight-search/flightsearch-app/internal/usecase"
)

// Options overrides collaborators that are normally built from the config.
type Options struct {
	Catalog    *catalog.Catalog
	Clock      timeutil.Clock
	Tracer     trace.Tracer
	Propagator propagation.TextMapPropagator
}

// New builds the Echo instance serving the API. Tracing must already be
// initialised when cfg enables it.
func New(cfg *config.Config, log *logger.Logger, opts Options) (*echo.Echo, error) {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.New()
	}

	flights, err := cat.Flights()
	if err != nil {
		return nil, fmt.Errorf("load flights: %w", err)
	}
	bookings, err := cat.Bookings()
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	validator, err := flighthttp.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("build validator: %w", err)
	}

	flightUseCase := usecase.NewFlightSearchUseCase(flights, &usecase.Config{
		MaxResults: cfg.Search.MaxResults,
	})
	bookingService := usecase.NewBookingService(servicesByBooking(bookings))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	propagator := opts.Propagator
	if propagator == nil {
		propagator = tracing.Propagator()
	}
	tracer := opts.Tracer
	if tracer == nil && cfg.Tracing.Exporter != tracing.ExporterDisabled {
		tracer = tracing.Tracer()
	}

	middleware.Setup(e, log.Logger, middleware.Options{
		Headers: middleware.HeadersConfig{
			Version:     cfg.App.Version,
			Environment: cfg.App.Env,
			Clock:       opts.Clock,
		},
		Recovery:   middleware.DefaultRecoveryConfig(),
		Tracer:     tracer,
		Propagator: propagator,
	})

	flighthttp.Configure(e, flighthttp.NewErrorHandler(log.Logger, classifier.NewDispatcher()))
	flighthttp.RegisterRoutes(e, flighthttp.Handlers{
		Flights:  flighthttp.NewFlightHandler(flightUseCase, validator),
		Bookings: flighthttp.NewBookingHandler(bookingService, validator),
		Info:     flighthttp.NewInfoHandler(cfg.App.Name, cfg.App.Version, cfg.App.CommitID),
	})

	return e, nil
}

func servicesByBooking(bookings []catalog.Booking) map[string][]domain.ServiceItem {
	out := make(map[string][]domain.ServiceItem, len(bookings))
	for _, b := range bookings {
		out[b.BookingID] = append(out[b.BookingID], b.Services...)
	}
	return out
}
