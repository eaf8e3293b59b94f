package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Options carries what Setup needs beyond the logger.
type Options struct {
	Headers    HeadersConfig
	Recovery   RecoveryConfig
	Tracer     trace.Tracer
	Propagator propagation.TextMapPropagator
}

// Chain returns the middleware in registration order:
//  1. RequestID, so every later log line carries the id
//  2. Tracing, so the span covers the whole request
//  3. ResponseHeaders, registered before the header can be written
//  4. RequestLogger, which hands errors to the error handler
//  5. Recover, innermost, turning panics into errors
//
// Tracing is skipped when no tracer is given.
func Chain(log zerolog.Logger, opts Options) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{RequestID()}
	if opts.Tracer != nil {
		prop := opts.Propagator
		if prop == nil {
			prop = propagation.TraceContext{}
		}
		chain = append(chain, Tracing(opts.Tracer, prop))
	}
	return append(chain,
		ResponseHeaders(opts.Headers, log),
		RequestLogger(log),
		RecoverWithConfig(opts.Recovery),
	)
}

// Setup registers Chain on e. Call it before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, opts Options) {
	e.Use(Chain(log, opts)...)
}
