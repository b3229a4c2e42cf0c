package runtime

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// CorrelationFromContext derives a correlation ID from the active
// OpenTelemetry span context, if any. Trace IDs are 16 bytes, so they map
// onto the UUID shape the envelope contract requires; events logged inside
// a traced request correlate with each other for free. Returns "" when the
// context carries no valid span.
func CorrelationFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return uuid.UUID(sc.TraceID()).String()
}
