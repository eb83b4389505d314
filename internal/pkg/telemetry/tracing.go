package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "crypto-notion-tracker"

// StartSpan starts a span on the global tracer. It is a no-op span until
// Init registers a real provider. Callers must End the returned span.
func StartSpan(ctx context.Context, name string, attrs ...trace.SpanStartOption) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, attrs...)
}
