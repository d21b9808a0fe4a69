package search

import "sync/atomic"

// LookaheadWindow is the bounded snapshot queue CAFE's workers read from
// (§4.4). Each Push publishes a brand-new immutable slice — the "logical
// version" — so a worker calling Get never races a concurrent Push: it
// either sees the version before the push or the version after, never a
// partially-updated one. This is what lets workers re-read their fixed slot
// on every iteration with no locking beyond the atomic pointer load.
type LookaheadWindow[S comparable] struct {
	width int
	snap  atomic.Pointer[[]*Node[S]]
}

// NewLookaheadWindow returns a window holding at most width elements.
func NewLookaheadWindow[S comparable](width int) *LookaheadWindow[S] {
	w := &LookaheadWindow[S]{width: width}
	empty := make([]*Node[S], 0, width)
	w.snap.Store(&empty)
	return w
}

// Push publishes n as the newest element, aging out the oldest element once
// width is exceeded. Push takes no lock and assumes a single writer: in CAFE
// that is the coordinator, which also owns the frontier and calls Push right
// after the matching frontier push, so no mutex is involved.
func (w *LookaheadWindow[S]) Push(n *Node[S]) {
	old := *w.snap.Load()
	start := 0
	if len(old) >= w.width {
		start = len(old) - w.width + 1
	}
	next := make([]*Node[S], 0, w.width)
	next = append(next, old[start:]...)
	next = append(next, n)
	w.snap.Store(&next)
}

// Get returns the element at slot i (0-based, oldest-first) of the current
// snapshot, or false if fewer than i+1 elements have been published yet.
func (w *LookaheadWindow[S]) Get(i int) (*Node[S], bool) {
	snap := *w.snap.Load()
	if i < 0 || i >= len(snap) {
		return nil, false
	}
	return snap[i], true
}

// Len reports how many elements the current snapshot holds (at most width).
func (w *LookaheadWindow[S]) Len() int {
	return len(*w.snap.Load())
}
