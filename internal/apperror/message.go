package apperror

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ProcessingError is one problem reported to the client.
// It is a comparable value; two errors with the same code, title and
// description are the same error.
type ProcessingError struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// NewProcessingError builds a ProcessingError for code. A blank description
// is dropped so that it is omitted from the serialized form.
func NewProcessingError(code ErrorCode, description string) ProcessingError {
	if strings.TrimSpace(description) == "" {
		description = ""
	}
	return ProcessingError{
		Code:        code.Code,
		Title:       code.Title,
		Description: description,
	}
}

// MessageType distinguishes errors from warnings in the envelope.
type MessageType string

const (
	MessageTypeError   MessageType = "E"
	MessageTypeWarning MessageType = "W"
)

// UnmarshalJSON rejects anything but "E" and "W".
func (t *MessageType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch MessageType(s) {
	case MessageTypeError, MessageTypeWarning:
		*t = MessageType(s)
		return nil
	default:
		return fmt.Errorf("unexpected message type %q", s)
	}
}

// ErrorMessage is the envelope of every error response.
type ErrorMessage struct {
	Type             MessageType       `json:"type"`
	RetryIndicator   bool              `json:"retryIndicator"`
	ProcessingErrors []ProcessingError `json:"processingErrors,omitempty"`
}

// WrapSingle wraps one processing error in an error envelope.
func WrapSingle(pe ProcessingError) *ErrorMessage {
	return WrapMany(pe)
}

// WrapMany wraps processing errors in an error envelope. Duplicates are
// dropped; the first occurrence keeps its position.
func WrapMany(errs ...ProcessingError) *ErrorMessage {
	m := &ErrorMessage{Type: MessageTypeError}
	m.Add(errs...)
	return m
}

// Add appends errors not yet present in the envelope.
func (m *ErrorMessage) Add(errs ...ProcessingError) {
	for _, pe := range errs {
		if !m.Contains(pe) {
			m.ProcessingErrors = append(m.ProcessingErrors, pe)
		}
	}
}

// Contains reports whether pe is already part of the envelope.
func (m *ErrorMessage) Contains(pe ProcessingError) bool {
	for _, existing := range m.ProcessingErrors {
		if existing == pe {
			return true
		}
	}
	return false
}

// Retryable marks the envelope as worth retrying and returns it.
func (m *ErrorMessage) Retryable() *ErrorMessage {
	m.RetryIndicator = true
	return m
}
