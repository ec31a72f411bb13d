package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies this instrumentation library in exported spans.
const tracerName = "github.com/reconcile-ui/reconcile"

// Tracer wraps an OpenTelemetry tracer with spans for the two phases of a
// render cycle. A nil *Tracer is a valid no-op.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a tracer using the global OpenTelemetry provider.
func NewTracer() *Tracer {
	return &Tracer{tracer: otel.Tracer(tracerName)}
}

// NewTracerWithProvider creates a tracer from an explicit provider.
func NewTracerWithProvider(provider trace.TracerProvider) *Tracer {
	return &Tracer{tracer: provider.Tracer(tracerName)}
}

// StartDiff opens the diff-phase span. The returned finish function records
// the patch count and must be called exactly once.
func (t *Tracer) StartDiff(ctx context.Context) (context.Context, func(patches int)) {
	if t == nil {
		return ctx, func(int) {}
	}
	ctx, span := t.tracer.Start(ctx, "reconcile.diff",
		trace.WithSpanKind(trace.SpanKindInternal))
	return ctx, func(patches int) {
		span.SetAttributes(attribute.Int("reconcile.patches", patches))
		span.End()
	}
}

// StartApply opens the apply-phase span. The returned finish function records
// the outcome and must be called exactly once.
func (t *Tracer) StartApply(ctx context.Context) (context.Context, func(err error)) {
	if t == nil {
		return ctx, func(error) {}
	}
	ctx, span := t.tracer.Start(ctx, "reconcile.apply",
		trace.WithSpanKind(trace.SpanKindInternal))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
