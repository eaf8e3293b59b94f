package tracing

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// CallIDProvider returns the id that correlates a response with its trace.
type CallIDProvider interface {
	CallID(ctx context.Context) (string, bool)
}

// SpanCallIDs reads the call id from the active span.
type SpanCallIDs struct{}

// CallID returns the trace id of the span in ctx, or false when there is no
// valid span.
func (SpanCallIDs) CallID(ctx context.Context) (string, bool) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return "", false
	}
	return sc.TraceID().String(), true
}
