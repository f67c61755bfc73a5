package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"todoapi/internal/core/port"
)

// NoOpProbe implements port.Telemetry with no side effects. Used in tests
// and whenever telemetry is disabled.
type NoOpProbe struct {
	tracer trace.Tracer
}

func NewNoOpProbe() port.Telemetry {
	return &NoOpProbe{tracer: noop.NewTracerProvider().Tracer("noop")}
}

func (p *NoOpProbe) StartRepositorySpan(ctx context.Context, operation string, entity string, attrs []attribute.KeyValue) (context.Context, trace.Span) {
	return p.tracer.Start(ctx, operation)
}

func (p *NoOpProbe) StartServiceSpan(ctx context.Context, service string, operation string, userID int, attrs []attribute.KeyValue) (context.Context, trace.Span) {
	return p.tracer.Start(ctx, operation)
}

func (p *NoOpProbe) RecordRepositoryOperation(ctx context.Context, operation string, entity string, duration time.Duration, err error) {
}

func (p *NoOpProbe) RecordBusinessEvent(ctx context.Context, event string, entity string, entityID string, userID int) {
}

func (p *NoOpProbe) RecordCacheHit(ctx context.Context, key string) {}

func (p *NoOpProbe) RecordCacheMiss(ctx context.Context, key string) {}

func (p *NoOpProbe) RecordError(ctx context.Context, operation string, err error) {}
