// Package classifier turns request failures into error envelopes.
//
// Every failure category has one classifier. The Dispatcher holds them in a
// fixed order and hands a failure to the first one whose category matches,
// so precedence between overlapping categories is a property of the table
// rather than of the call site.
package classifier

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"

	"github.com/flight-search/flightsearch-app/internal/apperror"
	"github.com/flight-search/flightsearch-app/internal/infrastructure/logger"
)

// Diagnostic is the operational log entry that accompanies a resolution.
type Diagnostic struct {
	Level    zerolog.Level
	Severity logger.Severity
	ErrorID  string
	Message  string
	Stack    []byte
}

// Resolution is the outcome of classifying a failure.
// A nil Message means no response must be written.
type Resolution struct {
	Status     int
	Message    *apperror.ErrorMessage
	Headers    map[string]string
	Diagnostic Diagnostic
}

// Suppressed reports whether the response must be abandoned.
func (r Resolution) Suppressed() bool {
	return r.Message == nil
}

func badRequest(diag Diagnostic, errs ...apperror.ProcessingError) Resolution {
	return Resolution{
		Status:     http.StatusBadRequest,
		Message:    apperror.WrapMany(errs...),
		Diagnostic: diag,
	}
}

func clientError(code apperror.ErrorCode, message string) Diagnostic {
	return Diagnostic{
		Level:    zerolog.ErrorLevel,
		Severity: logger.SeverityMinor,
		ErrorID:  code.Code,
		Message:  message,
	}
}

// ConstraintViolations resolves parameter validation failures. An override
// code wins over the constraint, an override message wins over the field name.
func ConstraintViolations(err *apperror.ConstraintViolationsError) Resolution {
	msg := apperror.WrapMany()
	for _, v := range err.Violations {
		description := v.Field
		if v.Rule.Message != "" {
			description = v.Rule.Message
		}
		msg.Add(apperror.NewProcessingError(v.Rule.ErrorCode(), description))
	}
	return Resolution{
		Status:     http.StatusBadRequest,
		Message:    msg,
		Diagnostic: clientError(firstCode(msg), err.Error()),
	}
}

// MalformedBody resolves a request body that could not be read.
func MalformedBody(err *apperror.MalformedBodyError) Resolution {
	var (
		parseErr   *apperror.ParseError
		mappingErr *apperror.MappingError
	)
	switch {
	case errors.As(err.Cause, &parseErr):
		code := apperror.ParameterIncorrectFormat
		return badRequest(clientError(code, err.Error()), apperror.NewProcessingError(code, parseErr.Field))
	case errors.As(err.Cause, &mappingErr):
		code := apperror.ParameterIncorrectFormat
		return badRequest(clientError(code, err.Error()), apperror.NewProcessingError(code, mappingErr.PathDescription()))
	default:
		code := apperror.ParameterUnspecifiedProblem
		return badRequest(Diagnostic{
			Level:    zerolog.WarnLevel,
			Severity: logger.SeverityMinor,
			ErrorID:  code.Code,
			Message:  "Unrecognized cause of unreadable request body: " + err.Error(),
		}, apperror.NewProcessingError(code, ""))
	}
}

// FieldErrors resolves validation failures of a bound request body.
func FieldErrors(err *apperror.FieldErrorsError) Resolution {
	msg := apperror.WrapMany()
	for _, fe := range err.Errors {
		description := fe.Field
		if description == "" {
			description = apperror.ObjectName
		}
		msg.Add(apperror.NewProcessingError(fe.Rule.ErrorCode(), description))
	}
	return Resolution{
		Status:     http.StatusBadRequest,
		Message:    msg,
		Diagnostic: clientError(firstCode(msg), err.Error()),
	}
}

// MissingParameter resolves a required parameter that was not sent.
func MissingParameter(err *apperror.MissingParameterError) Resolution {
	code := apperror.ParameterMissingValue
	return badRequest(clientError(code, err.Error()), apperror.NewProcessingError(code, err.Name))
}

// MissingHeader resolves a required header that was not sent.
func MissingHeader(err *apperror.MissingHeaderError) Resolution {
	code := apperror.ParameterMissingValue
	return badRequest(clientError(code, err.Error()), apperror.NewProcessingError(code, err.Name))
}

// BindingFailure resolves any other binding failure, passing its text through.
func BindingFailure(err *apperror.BindingFailureError) Resolution {
	code := apperror.ParameterUnspecifiedProblem
	return badRequest(clientError(code, err.Error()), apperror.NewProcessingError(code, err.Message))
}

// TypeMismatch resolves a value that could not be converted to its argument type.
func TypeMismatch(err *apperror.TypeMismatchError) Resolution {
	if err.Parameter == "" {
		code := apperror.ParameterUnspecifiedProblem
		return badRequest(clientError(code, err.Error()), apperror.NewProcessingError(code, ""))
	}
	code := apperror.ParameterIncorrectFormat
	return badRequest(clientError(code, err.Error()), apperror.NewProcessingError(code, err.Parameter))
}

// MethodNotAllowed lists the methods the route supports.
func MethodNotAllowed(err *apperror.MethodNotAllowedError) Resolution {
	code := apperror.MethodNotAllowed
	return Resolution{
		Status:     http.StatusMethodNotAllowed,
		Message:    apperror.WrapSingle(apperror.NewProcessingError(code, "Supported methods: "+strings.Join(err.Supported, ", "))),
		Diagnostic: clientError(code, err.Error()),
	}
}

// UnsupportedMediaType lists the content types the route can read.
func UnsupportedMediaType(err *apperror.UnsupportedMediaTypeError) Resolution {
	code := apperror.UnsupportedMediaType
	return Resolution{
		Status:     http.StatusUnsupportedMediaType,
		Message:    apperror.WrapSingle(apperror.NewProcessingError(code, "Supported media types: "+strings.Join(err.Supported, ", "))),
		Diagnostic: clientError(code, err.Error()),
	}
}

// NotFound resolves a domain not-found signal. Any other error is a
// programming error and panics.
func NotFound(err error) Resolution {
	var signal apperror.NotFoundSignal
	if !errors.As(err, &signal) {
		panic("classifier: NotFound called with a non not-found error: " + err.Error())
	}
	code := signal.ErrorCode()
	return Resolution{
		Status:  http.StatusNotFound,
		Message: apperror.WrapSingle(apperror.NewProcessingError(code, signal.Error())),
		Diagnostic: Diagnostic{
			Level:    zerolog.WarnLevel,
			Severity: logger.SeverityMinor,
			ErrorID:  code.Code,
			Message:  signal.Error(),
		},
	}
}

// Route resolves a status raised by the router from the status alone.
func Route(err *apperror.RouteError) Resolution {
	status := err.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	code := apperror.FromStatus(status)
	return Resolution{
		Status:     status,
		Message:    apperror.WrapSingle(apperror.NewProcessingError(code, "Requested URI: "+err.URI)),
		Headers:    map[string]string{"Accept": "application/json"},
		Diagnostic: clientError(code, err.Error()),
	}
}

// IOFailure abandons the response when the client went away and reports a
// retryable internal error otherwise.
func IOFailure(err *apperror.IOFailureError) Resolution {
	root := err.RootCause()
	if root != nil && strings.Contains(strings.ToLower(root.Error()), "broken pipe") {
		return Resolution{
			Diagnostic: Diagnostic{
				Level:    zerolog.WarnLevel,
				Severity: logger.SeverityWarning,
				Message:  "Client closed the connection: " + root.Error(),
			},
		}
	}
	code := apperror.InternalError
	return Resolution{
		Status:  http.StatusInternalServerError,
		Message: apperror.WrapSingle(apperror.NewProcessingError(code, "")).Retryable(),
		Diagnostic: Diagnostic{
			Level:    zerolog.ErrorLevel,
			Severity: logger.SeverityMajor,
			ErrorID:  code.Code,
			Message:  err.Error(),
			Stack:    debug.Stack(),
		},
	}
}

// Unhandled is the catch-all. The response only says an internal error
// happened; the cause and stack go to the log under UNDEFINED_INTERNAL_ERROR.
func Unhandled(err error) Resolution {
	message := "unknown error"
	if err != nil {
		message = err.Error()
	}
	stack := debug.Stack()
	var traced interface{ Stack() []byte }
	if errors.As(err, &traced) && len(traced.Stack()) > 0 {
		stack = traced.Stack()
	}
	return Resolution{
		Status:  http.StatusInternalServerError,
		Message: apperror.WrapSingle(apperror.NewProcessingError(apperror.InternalError, "")),
		Diagnostic: Diagnostic{
			Level:    zerolog.ErrorLevel,
			Severity: logger.SeverityMajor,
			ErrorID:  apperror.UndefinedInternalError.Code,
			Message:  message,
			Stack:    stack,
		},
	}
}

func firstCode(msg *apperror.ErrorMessage) apperror.ErrorCode {
	if len(msg.ProcessingErrors) == 0 {
		return apperror.ParameterUnspecifiedProblem
	}
	if code, ok := apperror.Lookup(msg.ProcessingErrors[0].Code); ok {
		return code
	}
	return apperror.ParameterUnspecifiedProblem
}
