package search

import (
	"context"
	"fmt"
)

// Run is the persisted record of one completed search. Path states are
// rendered via fmt.Sprint by the caller building the Run, since S is erased
// by the time a RunStore sees it.
type Run struct {
	ID        string
	Algorithm string
	Path      []string
	Stats     Snapshot
}

// RunStore persists and retrieves completed runs, keyed by the UUID each
// engine generates at the start of its Run method. It is declared here
// rather than in package store so Config can hold one directly: package
// store already imports package search for Snapshot, so the reverse import
// would cycle. Package store's MemStore/SQLiteStore/MySQLStore satisfy this
// interface via type aliases (store.Run = Run, store.RunStore = RunStore).
type RunStore interface {
	// Save records a completed run. Implementations overwrite any existing
	// record with the same ID.
	Save(ctx context.Context, run Run) error

	// Load retrieves a previously saved run, or a not-found error.
	Load(ctx context.Context, id string) (Run, error)

	// List returns every saved run's ID, newest first by when each ID was
	// first saved (overwriting a run does not move it).
	List(ctx context.Context) ([]string, error)
}

// persistRun saves a completed run through cfg.RunStore, if one is
// configured. A save failure does not fail the search that produced it (the
// caller already has its Result); a RunStore that needs to surface failures
// should log them itself from inside Save.
func persistRun[S comparable](ctx context.Context, cfg Config, runID, algorithm string, path []S, snap Snapshot) {
	if cfg.RunStore == nil {
		return
	}
	rendered := make([]string, len(path))
	for i, s := range path {
		rendered[i] = fmt.Sprint(s)
	}
	_ = cfg.RunStore.Save(ctx, Run{ID: runID, Algorithm: algorithm, Path: rendered, Stats: snap})
}
