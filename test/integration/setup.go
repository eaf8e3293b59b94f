// Package integration drives the fully assembled server over the embedded
// catalogue: middleware chain, binding, validation, use cases and the error
// handler together.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/flight-search/flightsearch-app/internal/app"
	"github.com/flight-search/flightsearch-app/internal/apperror"
	"github.com/flight-search/flightsearch-app/internal/config"
	"github.com/flight-search/flightsearch-app/internal/domain"
	"github.com/flight-search/flightsearch-app/internal/infrastructure/logger"
	"github.com/flight-search/flightsearch-app/internal/infrastructure/timeutil"
	"github.com/flight-search/flightsearch-app/test/testutil"
)

// LogBuffer collects log output from concurrent requests.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// Bytes returns a copy of everything written so far.
func (b *LogBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return bytes.Clone(b.buf.Bytes())
}

func (b *LogBuffer) String() string {
	return string(b.Bytes())
}

// TestServer wraps the assembled Echo instance with the collaborators a test
// inspects: captured logs, recorded spans and the clock.
type TestServer struct {
	Echo  *echo.Echo
	Logs  *LogBuffer
	Spans *tracetest.SpanRecorder
	Clock *timeutil.MockClock
}

// TestConfig is the configuration every integration test runs with.
func TestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:     "flightsearch-app",
			Env:      "test",
			Version:  "1.4.0",
			CommitID: "abc123",
		},
		Logging: config.LoggingConfig{Level: "debug", Format: "json"},
		Search:  config.SearchConfig{MaxResults: domain.DefaultMaxResults},
		Tracing: config.TracingConfig{Exporter: "none", SampleRatio: 1},
	}
}

// NewTestServer builds the server the way main does, with logs captured and
// spans recorded in memory.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := TestConfig()
	logs := &LogBuffer{}
	spans := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	clock := timeutil.NewMockClock(testutil.MustParseTime(t, "2025-01-01T00:00:00Z"))

	e, err := app.New(cfg, logger.NewWithOutput(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: cfg.App.Name,
	}, logs), app.Options{
		Clock:      clock,
		Tracer:     provider.Tracer("integration"),
		Propagator: propagation.TraceContext{},
	})
	require.NoError(t, err)

	return &TestServer{Echo: e, Logs: logs, Spans: spans, Clock: clock}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        string
	ContentType string
	Headers     map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, body)
	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Get issues a GET request.
func (ts *TestServer) Get(path string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// SearchRequest posts a JSON body to the search endpoint.
func (ts *TestServer) SearchRequest(body string) Response {
	return ts.Do(Request{
		Method:      http.MethodPost,
		Path:        "/api/v1/flights/search",
		Body:        body,
		ContentType: echo.MIMEApplicationJSON,
	})
}

// LogLines decodes the captured JSON log lines.
func (ts *TestServer) LogLines(t *testing.T) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	for _, raw := range bytes.Split(bytes.TrimSpace(ts.Logs.Bytes()), []byte("\n")) {
		if len(raw) == 0 {
			continue
		}
		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &line))
		lines = append(lines, line)
	}
	return lines
}

// Flights decodes a flight list body.
func (r Response) Flights(t *testing.T) []domain.FlightItem {
	t.Helper()
	var flights []domain.FlightItem
	require.NoError(t, json.Unmarshal(r.Body, &flights), string(r.Body))
	return flights
}

// Envelope decodes an error body.
func (r Response) Envelope(t *testing.T) apperror.ErrorMessage {
	t.Helper()
	var msg apperror.ErrorMessage
	require.NoError(t, json.Unmarshal(r.Body, &msg), string(r.Body))
	return msg
}

// FlightIDs returns the ids of flights in order.
func FlightIDs(flights []domain.FlightItem) []string {
	ids := make([]string, 0, len(flights))
	for _, f := range flights {
		ids = append(ids, f.ID)
	}
	return ids
}
