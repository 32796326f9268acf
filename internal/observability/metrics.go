package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/fr0stylo/pfsync"

// SyncMetrics counts sync runs, per-entity upsert outcomes and webhook events.
type SyncMetrics struct {
	runs     metric.Int64Counter
	entities metric.Int64Counter
	webhooks metric.Int64Counter
}

// NewSyncMetrics registers counters on the global meter provider.
func NewSyncMetrics() SyncMetrics {
	meter := otel.Meter(meterName)
	runs, _ := meter.Int64Counter("pfsync.sync.runs")
	entities, _ := meter.Int64Counter("pfsync.sync.entities")
	webhooks, _ := meter.Int64Counter("pfsync.webhook.events")
	return SyncMetrics{runs: runs, entities: entities, webhooks: webhooks}
}

// RecordRun counts one orchestrator run by its result.
func (m SyncMetrics) RecordRun(ctx context.Context, kind, result string) {
	if m.runs == nil {
		return
	}
	m.runs.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("result", result),
	))
}

// RecordEntity counts one upsert outcome.
func (m SyncMetrics) RecordEntity(ctx context.Context, kind, outcome string) {
	if m.entities == nil {
		return
	}
	m.entities.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("outcome", outcome),
	))
}

// RecordWebhook counts one inbound webhook by event family and result.
func (m SyncMetrics) RecordWebhook(ctx context.Context, family, result string) {
	if m.webhooks == nil {
		return
	}
	m.webhooks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("family", family),
		attribute.String("result", result),
	))
}
