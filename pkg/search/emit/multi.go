package emit

import (
	"context"

	"github.com/autumnippert/spbfs-go/pkg/search"
)

// Multi fans one event out to every wrapped Emitter in order. Useful for
// combining LogEmitter (always-on structured logs) with OTelEmitter
// (tracing, enabled only when a tracer provider is configured).
type Multi struct {
	emitters []search.Emitter
}

// NewMulti wraps the given emitters. A nil entry is skipped.
func NewMulti(emitters ...search.Emitter) *Multi {
	out := make([]search.Emitter, 0, len(emitters))
	for _, e := range emitters {
		if e != nil {
			out = append(out, e)
		}
	}
	return &Multi{emitters: out}
}

func (m *Multi) Emit(ev search.Event) {
	for _, e := range m.emitters {
		e.Emit(ev)
	}
}

func (m *Multi) EmitBatch(ctx context.Context, events []search.Event) error {
	for _, e := range m.emitters {
		if err := e.EmitBatch(ctx, events); err != nil {
			return err
		}
	}
	return nil
}

func (m *Multi) Flush(ctx context.Context) error {
	for _, e := range m.emitters {
		if err := e.Flush(ctx); err != nil {
			return err
		}
	}
	return nil
}

var _ search.Emitter = (*Multi)(nil)
