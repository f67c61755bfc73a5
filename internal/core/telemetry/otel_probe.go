package telemetry

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"todoapi/internal/core/port"
	"todoapi/pkg/telemetry"
	"todoapi/pkg/tracing"
)

// OtelProbe emits spans through the global tracer provider and counters
// through AppMetrics. A nil metrics pointer disables the counter side.
type OtelProbe struct {
	metrics *telemetry.AppMetrics
}

func NewOtelProbe(metrics *telemetry.AppMetrics) port.Telemetry {
	return &OtelProbe{metrics: metrics}
}

func (p *OtelProbe) StartRepositorySpan(ctx context.Context, operation string, entity string, attrs []attribute.KeyValue) (context.Context, trace.Span) {
	base := []attribute.KeyValue{
		attribute.String("db.entity", entity),
		attribute.String("db.operation", operation),
	}

	return tracing.CreateChildSpan(ctx, "db."+entity+"."+operation, append(base, attrs...))
}

func (p *OtelProbe) StartServiceSpan(ctx context.Context, service string, operation string, userID int, attrs []attribute.KeyValue) (context.Context, trace.Span) {
	base := []attribute.KeyValue{
		attribute.String("service.operation", operation),
		attribute.Int("user.id", userID),
	}

	return tracing.CreateChildSpan(ctx, "service."+service+"."+operation, append(base, attrs...))
}

func (p *OtelProbe) RecordRepositoryOperation(ctx context.Context, operation string, entity string, duration time.Duration, err error) {
	if p.metrics == nil {
		return
	}

	p.metrics.RecordDatabaseOperation(ctx, operation, entity)

	if err != nil {
		p.RecordError(ctx, operation, err)
	}
}

func (p *OtelProbe) RecordBusinessEvent(ctx context.Context, event string, entity string, entityID string, userID int) {
	span := trace.SpanFromContext(ctx)
	span.AddEvent(event, trace.WithAttributes(
		attribute.String("entity", entity),
		attribute.String("entity.id", entityID),
		attribute.String("user.id", strconv.Itoa(userID)),
	))

	if p.metrics != nil && entity == "todo" {
		p.metrics.RecordTodoOperation(ctx, event)
	}

	if p.metrics != nil && entity == "user" {
		p.metrics.RecordAuthOperation(ctx, event)
	}
}

func (p *OtelProbe) RecordCacheHit(ctx context.Context, key string) {
	if p.metrics != nil {
		p.metrics.RecordCacheHit(ctx, key)
	}
}

func (p *OtelProbe) RecordCacheMiss(ctx context.Context, key string) {
	if p.metrics != nil {
		p.metrics.RecordCacheMiss(ctx, key)
	}
}

func (p *OtelProbe) RecordError(ctx context.Context, operation string, err error) {
	span := trace.SpanFromContext(ctx)
	tracing.AddSpanError(span, err)
}
