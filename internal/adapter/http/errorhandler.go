package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/flightsearch-app/internal/adapter/http/middleware"
	"github.com/flight-search/flightsearch-app/internal/adapter/http/response"
	"github.com/flight-search/flightsearch-app/internal/apperror"
	"github.com/flight-search/flightsearch-app/internal/apperror/classifier"
	"github.com/flight-search/flightsearch-app/internal/infrastructure/logger"
)

// ErrorHandler is the single place where an error becomes a response.
type ErrorHandler struct {
	log        zerolog.Logger
	dispatcher *classifier.Dispatcher
}

// NewErrorHandler returns an ErrorHandler over the given dispatcher.
func NewErrorHandler(log zerolog.Logger, dispatcher *classifier.Dispatcher) *ErrorHandler {
	if dispatcher == nil {
		dispatcher = classifier.NewDispatcher()
	}
	return &ErrorHandler{log: log, dispatcher: dispatcher}
}

// Handle implements echo.HTTPErrorHandler. Router and transport errors are
// translated into failure categories first, then the dispatcher picks the
// classifier, the diagnostic is logged and the envelope written unless the
// response is already on its way.
func (h *ErrorHandler) Handle(err error, c echo.Context) {
	if clientCancelled(err, c) {
		h.report(c, classifier.Diagnostic{
			Level:    zerolog.WarnLevel,
			Severity: logger.SeverityWarning,
			Message:  "Request cancelled by client: " + err.Error(),
		})
		return
	}

	failure := h.translate(err, c)
	res := h.dispatcher.Classify(failure)
	h.report(c, res.Diagnostic)

	if c.Response().Committed {
		return
	}
	if werr := response.Problem(c, res); werr != nil {
		h.report(c, h.dispatcher.Classify(werr).Diagnostic)
	}
}

// translate maps errors raised outside the handlers to failure categories.
// Errors the dispatcher already recognizes pass through unchanged.
func (h *ErrorHandler) translate(err error, c echo.Context) error {
	if h.dispatcher.Match(err) != classifier.CategoryUnhandled {
		return err
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		req := c.Request()
		switch he.Code {
		case http.StatusMethodNotAllowed:
			return &apperror.MethodNotAllowedError{Method: req.Method, Supported: allowedMethods(c)}
		case http.StatusUnsupportedMediaType:
			return &apperror.UnsupportedMediaTypeError{
				ContentType: req.Header.Get(echo.HeaderContentType),
				Supported:   SupportedMediaTypes,
			}
		default:
			return &apperror.RouteError{Status: he.Code, URI: req.URL.Path}
		}
	}

	if errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET) {
		return &apperror.IOFailureError{Err: err}
	}
	return err
}

// clientCancelled reports a context cancellation caused by the client going
// away. Nobody is left to read a response.
func clientCancelled(err error, c echo.Context) bool {
	return errors.Is(err, context.Canceled) && errors.Is(c.Request().Context().Err(), context.Canceled)
}

// allowedMethods reads the methods the router found for the path.
func allowedMethods(c echo.Context) []string {
	allow := c.Response().Header().Get(echo.HeaderAllow)
	if allow == "" {
		allow, _ = c.Get(echo.ContextKeyHeaderAllow).(string)
	}
	if allow == "" {
		return nil
	}
	methods := strings.Split(allow, ",")
	for i := range methods {
		methods[i] = strings.TrimSpace(methods[i])
	}
	return methods
}

func (h *ErrorHandler) report(c echo.Context, d classifier.Diagnostic) {
	event := h.log.WithLevel(d.Level)
	event = logger.Diagnostic(event, d.Severity, d.ErrorID)
	event = logger.Stack(event, d.Stack)
	event.
		Str("request_id", middleware.GetRequestID(c)).
		Str("method", c.Request().Method).
		Str("path", c.Request().URL.Path).
		Msg(d.Message)
}
