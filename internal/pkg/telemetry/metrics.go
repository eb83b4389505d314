package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "crypto-notion-tracker"

var (
	metricsOnce sync.Once

	recordsSubmitted metric.Int64Counter
	recordsFailed    metric.Int64Counter
)

// initMetrics lazily creates the pipeline counters against the global meter.
// The global meter delegates to the real provider once Init has run, so the
// creation order does not matter.
func initMetrics() {
	metricsOnce.Do(func() {
		meter := otel.Meter(meterName)

		recordsSubmitted, _ = meter.Int64Counter("records_submitted_total",
			metric.WithDescription("Records accepted by the datastore sink"),
		)
		recordsFailed, _ = meter.Int64Counter("records_failed_total",
			metric.WithDescription("Transactions that failed valuation or sink submission"),
		)
	})
}

// CountRecordSubmitted increments the submitted-records counter for a network.
func CountRecordSubmitted(ctx context.Context, network string) {
	initMetrics()

	if recordsSubmitted != nil {
		recordsSubmitted.Add(ctx, 1, metric.WithAttributes(attribute.String("network", network)))
	}
}

// CountRecordFailed increments the failed-records counter for a network.
func CountRecordFailed(ctx context.Context, network string) {
	initMetrics()

	if recordsFailed != nil {
		recordsFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("network", network)))
	}
}
