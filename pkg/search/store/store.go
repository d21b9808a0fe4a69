// Package store persists completed search runs. A run is a single batch
// computation, not a resumable workflow, so the store's job is simpler than
// a step-by-step checkpoint log: record one Snapshot (and, optionally, the
// reconstructed path) per run ID, and let it be looked up again later.
package store

import (
	"errors"

	"github.com/autumnippert/spbfs-go/pkg/search"
)

// ErrNotFound is returned when a requested run ID does not exist.
var ErrNotFound = errors.New("store: run not found")

// Run and RunStore are aliases for the types declared in package search
// (Config.RunStore holds one directly, see pkg/search/runstore.go). The
// backends below implement search.RunStore through these aliases without
// package search ever importing package store.
type Run = search.Run
type RunStore = search.RunStore
