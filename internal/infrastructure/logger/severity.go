package logger

import (
	"github.com/rs/zerolog"
)

// Field names used on error-path log entries.
const (
	FieldSeverity = "severity"
	FieldErrorID  = "errorId"
	FieldStack    = "stack"
)

// Severity is the operations-facing impact rating of a log entry.
type Severity string

const (
	SeverityCritical    Severity = "Critical"
	SeverityMajor       Severity = "Major"
	SeverityMinor       Severity = "Minor"
	SeverityNonOps      Severity = "Non-OPS"
	SeverityWarning     Severity = "Warning"
	SeverityInformation Severity = "Information"
	SeveritySuccess     Severity = "Success"
	SeverityDebug       Severity = "Debug"
)

// Diagnostic decorates e with severity and errorId. An empty errorID is skipped.
func Diagnostic(e *zerolog.Event, severity Severity, errorID string) *zerolog.Event {
	if severity != "" {
		e = e.Str(FieldSeverity, string(severity))
	}
	if errorID != "" {
		e = e.Str(FieldErrorID, errorID)
	}
	return e
}

// Stack attaches a captured stack trace to e.
func Stack(e *zerolog.Event, stack []byte) *zerolog.Event {
	if len(stack) == 0 {
		return e
	}
	return e.Str(FieldStack, string(stack))
}
