package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/flightsearch-app/internal/infrastructure/timeutil"
	"github.com/flight-search/flightsearch-app/internal/infrastructure/tracing"
)

// Headers stamped on every response.
const (
	HeaderVersion      = "version"
	HeaderEnvironment  = "environment"
	HeaderResponseTime = "Response-Time"
	HeaderTraceID      = "X-B3-TraceId"
)

// HeadersConfig configures ResponseHeaders.
type HeadersConfig struct {
	Version     string
	Environment string
	Clock       timeutil.Clock
	CallIDs     tracing.CallIDProvider
}

// ResponseHeaders stamps the build version, environment, handling time and
// call id on the response right before the header is written. Without a
// valid span the call id is a random UUID.
func ResponseHeaders(cfg HeadersConfig, log zerolog.Logger) echo.MiddlewareFunc {
	if cfg.Clock == nil {
		cfg.Clock = timeutil.NewRealClock()
	}
	if cfg.CallIDs == nil {
		cfg.CallIDs = tracing.SpanCallIDs{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := cfg.Clock.Now()
			res := c.Response()

			res.Before(func() {
				h := res.Header()
				h.Set(HeaderVersion, cfg.Version)
				h.Set(HeaderEnvironment, cfg.Environment)
				h.Set(HeaderResponseTime, timeutil.Millis(cfg.Clock.Since(start)))
				h.Set(HeaderTraceID, callID(c, cfg.CallIDs, log))
			})

			return next(c)
		}
	}
}

func callID(c echo.Context, ids tracing.CallIDProvider, log zerolog.Logger) string {
	if id, ok := ids.CallID(c.Request().Context()); ok {
		return id
	}
	id := uuid.New().String()
	log.Warn().
		Str("request_id", GetRequestID(c)).
		Str("call_id", id).
		Msg("No valid span for request, generated call id")
	return id
}
