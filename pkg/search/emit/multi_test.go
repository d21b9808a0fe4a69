package emit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autumnippert/spbfs-go/pkg/search"
)

type stubEmitter struct {
	emitted  []search.Event
	flushErr error
	batchErr error
}

func (s *stubEmitter) Emit(ev search.Event) { s.emitted = append(s.emitted, ev) }
func (s *stubEmitter) EmitBatch(_ context.Context, evs []search.Event) error {
	s.emitted = append(s.emitted, evs...)
	return s.batchErr
}
func (s *stubEmitter) Flush(context.Context) error { return s.flushErr }

func TestMultiFansOutToEveryEmitter(t *testing.T) {
	a, b := &stubEmitter{}, &stubEmitter{}
	m := NewMulti(a, b)

	ev := search.Event{Msg: "expand"}
	m.Emit(ev)

	require.Len(t, a.emitted, 1)
	require.Len(t, b.emitted, 1)
	assert.Equal(t, ev, a.emitted[0])
	assert.Equal(t, ev, b.emitted[0])
}

func TestMultiSkipsNilEntries(t *testing.T) {
	a := &stubEmitter{}
	m := NewMulti(a, nil)

	m.Emit(search.Event{Msg: "start"})
	assert.Len(t, a.emitted, 1)
}

func TestMultiFlushReturnsFailingEmitterError(t *testing.T) {
	failing := &stubEmitter{flushErr: errors.New("boom")}
	never := &stubEmitter{}
	m := NewMulti(failing, never)

	err := m.Flush(context.Background())
	assert.Error(t, err)
}

func TestMultiEmitBatchPropagatesError(t *testing.T) {
	failing := &stubEmitter{batchErr: errors.New("boom")}
	m := NewMulti(failing)

	err := m.EmitBatch(context.Background(), []search.Event{{Msg: "x"}})
	assert.Error(t, err)
}
