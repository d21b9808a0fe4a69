package search

import "sync/atomic"

// nodeStatus is the per-node atomic tri-state used only by CAFE (sequential
// A*, KBFS's batches and SPA*'s lock-guarded expansions need no publication
// protocol).
//
//	Unvisited --CAS--> Working --store(release)--> Done
//	   ^                                               |
//	   |-------------- duplicate replacement ----------|
//
// Transitions are monotone except for the Done -> Unvisited reset performed
// by duplicate resolution, which always writes a fresh successors slice
// before resetting status, so no reader ever observes Done against a stale
// successors list (§4.5).
type nodeStatus struct {
	v atomic.Uint32
}

const (
	statusUnvisited uint32 = iota
	statusWorking
	statusDone
)

// tryClaim attempts the Unvisited -> Working transition. Exactly one caller
// among any number of concurrent callers observes success; that caller (and
// only that caller) is permitted to write n.successors and publish Done.
func (n *Node[S]) tryClaim() bool {
	return n.status.v.CompareAndSwap(statusUnvisited, statusWorking)
}

// publishDone stores the node's successors and then publishes Done with
// release semantics, so any thread that subsequently observes Done via
// loadStatus/isDone (acquire) is guaranteed to see this exact successors slice.
func (n *Node[S]) publishDone(successors []*Node[S]) {
	n.successors = successors
	n.status.v.Store(statusDone)
}

// loadStatus loads the current status with acquire semantics: a caller that
// observes statusDone is guaranteed to see the successors slice written by
// the publishDone call that produced it.
func (n *Node[S]) loadStatus() uint32 {
	return n.status.v.Load()
}

// isDone reports whether the node's expansion has been published.
func (n *Node[S]) isDone() bool {
	return n.loadStatus() == statusDone
}

// resetForRequeue performs the Done -> Unvisited transition CAFE's
// duplicate-replacement path uses when a better-cost duplicate of an
// already-expanded node arrives (§4.2, §4.5). The new successors are written
// first, then Unvisited is stored with release ordering, so a concurrent
// reader that next observes Done again always sees a consistent pair.
func (n *Node[S]) resetForRequeue(successors []*Node[S]) {
	checkInvariant(n.isDone(), "duplicate replacement must only reset an already-expanded node", n.State)
	n.successors = successors
	n.status.v.Store(statusUnvisited)
}
