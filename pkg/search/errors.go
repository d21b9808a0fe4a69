package search

import "errors"

// ErrUsage indicates malformed command-line input or a malformed problem
// instance (the tiles and pathfind parsers wrap it). cmd/spbfs exits 1 on
// either.
var ErrUsage = errors.New("search: usage error")

// InvariantError reports a concurrency or data-model invariant violation
// detected in a debug build. Release builds trust the invariant and never
// construct one.
type InvariantError struct {
	Invariant string
	State     any
}

func (e *InvariantError) Error() string {
	return "search: invariant violated: " + e.Invariant
}
