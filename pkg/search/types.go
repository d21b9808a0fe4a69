// Package search implements a family of heuristic best-first graph search
// engines — sequential A*, KBFS, SPA*, and CAFE — that share one Problem
// Instance contract, one node arena model, and one duplicate-resolution
// protocol, but differ in how they orchestrate concurrent expansion.
package search

import "context"

// Cost is the additive scalar used for path costs and heuristic estimates.
// Single precision matches the throughput-over-precision tradeoff the shipped
// problem domains (unit step costs, Manhattan-distance heuristics) actually
// need.
type Cost = float32

// Problem is the external contract every search engine consumes. A Problem
// never carries a separate goal state: goal-ness is encoded as Heuristic
// returning zero. Implementations must be safe for concurrent read access —
// KBFS, SPA*, and CAFE all call Successors, StepCost, and Heuristic from multiple
// goroutines without external synchronization.
type Problem[S comparable] interface {
	// InitialState returns the state search begins from.
	InitialState() S

	// Successors returns the ordered, possibly empty list of states reachable
	// in one step from s. The list may include s itself; engines filter
	// self-loops before they reach the duplicate-resolution protocol.
	Successors(s S) []S

	// StepCost returns the non-negative cost of moving from s to successor.
	StepCost(s, successor S) Cost

	// Heuristic returns a non-negative estimate of the remaining cost from s
	// to any goal. Heuristic(s) == 0 is the goal predicate.
	Heuristic(s S) Cost

	// MaxActionCount is a strict upper bound on len(Successors(s)) for any s,
	// used by KBFS to preallocate successor node slots per batch member.
	MaxActionCount() int
}

// Result is what every engine returns from Run, regardless of algorithm.
type Result[S comparable] struct {
	RunID string
	Path  []S
	Stats Stats
}

// Engine runs one of the four search strategies to completion or failure.
// Run never returns a partial path: either Result.Path is a complete
// initial-to-goal sequence, or it is empty and Result.Stats still reports
// full counters.
type Engine[S comparable] interface {
	Run(ctx context.Context, problem Problem[S]) (Result[S], error)
}
