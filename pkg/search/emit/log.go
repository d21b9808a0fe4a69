// Package emit provides concrete search.Emitter sinks: structured logging
// via zerolog and distributed tracing via OpenTelemetry spans. Both are kept
// out of the core search package so a caller that only wants NullEmitter
// never pulls in either dependency.
package emit

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/autumnippert/spbfs-go/pkg/search"
)

// LogEmitter writes every event as one structured log line via zerolog.
type LogEmitter struct {
	log zerolog.Logger
}

// NewLogEmitter wraps an existing zerolog.Logger. Pass zerolog.New(os.Stdout)
// (or any configured logger) from the caller; LogEmitter does no logger
// construction of its own.
func NewLogEmitter(log zerolog.Logger) *LogEmitter {
	return &LogEmitter{log: log}
}

// Emit writes one event as a log line at info level, with run_id, algorithm,
// and every Meta key/value attached as a structured field.
func (e *LogEmitter) Emit(ev search.Event) {
	evt := e.log.Info().
		Str("run_id", ev.RunID).
		Str("algorithm", ev.Algorithm)
	for k, v := range ev.Meta {
		evt = evt.Interface(k, v)
	}
	evt.Msg(ev.Msg)
}

// EmitBatch logs every event in order. zerolog writes synchronously, so
// there is no batching efficiency to gain beyond looping.
func (e *LogEmitter) EmitBatch(_ context.Context, events []search.Event) error {
	for _, ev := range events {
		e.Emit(ev)
	}
	return nil
}

// Flush is a no-op: zerolog writes are unbuffered from LogEmitter's view.
func (e *LogEmitter) Flush(context.Context) error { return nil }

var _ search.Emitter = (*LogEmitter)(nil)
