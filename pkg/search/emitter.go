package search

import "context"

// Event is one observability event emitted during a search run: an
// expansion, a duplicate resolution, a goal discovery, or an
// engine-lifecycle transition (started, finished).
type Event struct {
	// RunID identifies the search run that produced this event.
	RunID string

	// Algorithm is the engine name ("astar", "kbfs", "spastar", "cafe").
	Algorithm string

	// Msg is a short, stable event name: "expand", "duplicate", "goal",
	// "start", "finish".
	Msg string

	// Meta carries event-specific fields (e.g. "f", "g", "h", "worker",
	// "manual"). Keys are event-specific; see each engine's emit call sites.
	Meta map[string]any
}

// Emitter receives observability events from a running search. Emit must
// not block the search for long: engines call it on the hot expansion path,
// so a slow Emitter directly throttles the search. emit.LogEmitter writes
// each event synchronously; emit.OTelEmitter hands spans to the configured
// tracer provider, whose span processor decides when they are exported.
type Emitter interface {
	// Emit handles a single event. Must not panic.
	Emit(Event)

	// EmitBatch handles multiple events as one unit of work. Returns an
	// error only for catastrophic, non-retryable failures.
	EmitBatch(ctx context.Context, events []Event) error

	// Flush blocks until any buffered events have been delivered.
	Flush(ctx context.Context) error
}

// NullEmitter discards every event. It is the zero-overhead default every
// engine uses when no Option supplies one.
type NullEmitter struct{}

// Emit is a no-op.
func (NullEmitter) Emit(Event) {}

// EmitBatch is a no-op that always succeeds.
func (NullEmitter) EmitBatch(context.Context, []Event) error { return nil }

// Flush is a no-op that always succeeds.
func (NullEmitter) Flush(context.Context) error { return nil }
