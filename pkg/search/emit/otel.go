package emit

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/autumnippert/spbfs-go/pkg/search"
)

// OTelEmitter turns each event into an immediate OpenTelemetry span: run_id
// and algorithm as standard attributes, every Meta key converted to a typed
// span attribute. Spans are point-in-time (started and ended immediately)
// because a search Event describes an instant, not an interval.
type OTelEmitter struct {
	tracer trace.Tracer
}

// NewOTelEmitter wraps a tracer obtained from otel.Tracer("spbfs").
func NewOTelEmitter(tracer trace.Tracer) *OTelEmitter {
	return &OTelEmitter{tracer: tracer}
}

func (o *OTelEmitter) Emit(ev search.Event) {
	_, span := o.tracer.Start(context.Background(), ev.Msg)
	defer span.End()
	o.annotate(span, ev)
}

func (o *OTelEmitter) EmitBatch(ctx context.Context, events []search.Event) error {
	for _, ev := range events {
		_, span := o.tracer.Start(ctx, ev.Msg)
		o.annotate(span, ev)
		span.End()
	}
	return nil
}

// Flush force-flushes the global tracer provider, if it supports flushing
// (the SDK provider does; the no-op default provider does not).
func (o *OTelEmitter) Flush(ctx context.Context) error {
	type flusher interface {
		ForceFlush(context.Context) error
	}
	if f, ok := otel.GetTracerProvider().(flusher); ok {
		return f.ForceFlush(ctx)
	}
	return nil
}

func (o *OTelEmitter) annotate(span trace.Span, ev search.Event) {
	span.SetAttributes(
		attribute.String("spbfs.run_id", ev.RunID),
		attribute.String("spbfs.algorithm", ev.Algorithm),
	)
	for k, v := range ev.Meta {
		switch val := v.(type) {
		case string:
			span.SetAttributes(attribute.String(k, val))
		case int:
			span.SetAttributes(attribute.Int(k, val))
		case int64:
			span.SetAttributes(attribute.Int64(k, val))
		case float64:
			span.SetAttributes(attribute.Float64(k, val))
		case bool:
			span.SetAttributes(attribute.Bool(k, val))
		case time.Duration:
			span.SetAttributes(attribute.Int64(k, int64(val/time.Millisecond)))
		default:
			span.SetAttributes(attribute.String(k, fmt.Sprintf("%v", val)))
		}
	}
}

var _ search.Emitter = (*OTelEmitter)(nil)
