package apperror

import (
	"fmt"
	"strings"
)

// The types below are the failure categories a request can end in. Each is
// produced at the edge (binding, validation, routing, response writing) and
// consumed by exactly one classifier.

// NotFoundSignal is raised by lookup services when an entity cannot be located.
// Error returns the human readable description sent to the client.
type NotFoundSignal interface {
	error
	ErrorCode() ErrorCode
}

// ConstraintViolation is one failed rule on a request parameter.
type ConstraintViolation struct {
	Field string
	Rule  Rule
}

// ConstraintViolationsError is the result of validating path and query parameters.
type ConstraintViolationsError struct {
	Violations []ConstraintViolation
}

func (e *ConstraintViolationsError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Rule.Constraint)
	}
	return "constraint violations: " + strings.Join(parts, ", ")
}

// ParseError is a low-level syntax failure while reading a request body.
// Field is the name being parsed when the failure happened, if known.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return "malformed body: " + e.Err.Error()
	}
	return fmt.Sprintf("malformed body at %q: %v", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MappingError is a body that parsed but did not fit the target type.
// Path runs from the innermost reference to the outermost; an empty
// segment is an unnamed reference such as an array index.
type MappingError struct {
	Path []string
	Err  error
}

func (e *MappingError) Error() string {
	return "body mapping failed: " + e.Err.Error()
}

func (e *MappingError) Unwrap() error { return e.Err }

// PathDescription joins the named path segments from outermost to innermost with ".".
func (e *MappingError) PathDescription() string {
	names := make([]string, 0, len(e.Path))
	for i := len(e.Path) - 1; i >= 0; i-- {
		if e.Path[i] != "" {
			names = append(names, e.Path[i])
		}
	}
	return strings.Join(names, ".")
}

// MalformedBodyError reports a request body that could not be read.
// Cause is a *ParseError, a *MappingError or anything else.
type MalformedBodyError struct {
	Cause error
}

func (e *MalformedBodyError) Error() string {
	if e.Cause == nil {
		return "malformed request body"
	}
	return e.Cause.Error()
}

func (e *MalformedBodyError) Unwrap() error { return e.Cause }

// ObjectName is the description used for errors on the request as a whole.
const ObjectName = "request"

// FieldError is one failed rule found while validating a bound request body.
// An empty Field marks an object-level error.
type FieldError struct {
	Field string
	Rule  Rule
}

// FieldErrorsError is the result of validating a bound request body.
type FieldErrorsError struct {
	Errors []FieldError
}

func (e *FieldErrorsError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		field := fe.Field
		if field == "" {
			field = ObjectName
		}
		parts = append(parts, field+": "+fe.Rule.Constraint)
	}
	return "invalid request: " + strings.Join(parts, ", ")
}

// MissingParameterError reports a required query or path parameter that was not sent.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("required parameter %q is missing", e.Name)
}

// MissingHeaderError reports a required request header that was not sent.
type MissingHeaderError struct {
	Name string
}

func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("required header %q is missing", e.Name)
}

// BindingFailureError is any other failure to bind request data.
type BindingFailureError struct {
	Message string
}

func (e *BindingFailureError) Error() string { return e.Message }

// TypeMismatchError reports a value that could not be converted to the
// argument type. Parameter is empty when the argument is not known.
type TypeMismatchError struct {
	Parameter string
	Value     string
	Err       error
}

func (e *TypeMismatchError) Error() string {
	if e.Parameter == "" {
		return "argument type mismatch"
	}
	return fmt.Sprintf("parameter %q has wrong type: %q", e.Parameter, e.Value)
}

func (e *TypeMismatchError) Unwrap() error { return e.Err }

// MethodNotAllowedError reports a request method the route does not serve.
type MethodNotAllowedError struct {
	Method    string
	Supported []string
}

func (e *MethodNotAllowedError) Error() string {
	return fmt.Sprintf("method %s not allowed", e.Method)
}

// UnsupportedMediaTypeError reports a request content type the route cannot read.
type UnsupportedMediaTypeError struct {
	ContentType string
	Supported   []string
}

func (e *UnsupportedMediaTypeError) Error() string {
	return fmt.Sprintf("content type %q not supported", e.ContentType)
}

// IOFailureError is a failure while writing the response.
type IOFailureError struct {
	Err error
}

func (e *IOFailureError) Error() string { return "response write failed: " + e.Err.Error() }

func (e *IOFailureError) Unwrap() error { return e.Err }

// RootCause follows the unwrap chain down to the innermost error.
func (e *IOFailureError) RootCause() error {
	return RootCause(e.Err)
}

// RouteError is a status raised by the router itself (unknown path and the like).
type RouteError struct {
	Status int
	URI    string
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("route error %d for %s", e.Status, e.URI)
}

// RootCause unwraps err through single-error chains until it cannot go deeper.
func RootCause(err error) error {
	for err != nil {
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return err
		}
		next := u.Unwrap()
		if next == nil {
			return err
		}
		err = next
	}
	return err
}

// PanicError carries a value recovered from a panicking handler.
type PanicError struct {
	Value interface{}
	Trace []byte
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return "panic: " + err.Error()
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Stack returns the stack captured at recovery time.
func (e *PanicError) Stack() []byte { return e.Trace }
