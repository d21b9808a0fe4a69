package search

import (
	"sync/atomic"
	"time"
)

// Stats holds the per-run counters from §2's Stats & Clock layer. All
// counters are atomic because SPA* and CAFE increment them from multiple
// goroutines; sequential A* and KBFS pay the (negligible) atomic overhead
// for a single shared implementation across all four engines.
type Stats struct {
	expanded         atomic.Int64
	generated        atomic.Int64
	duplicated       atomic.Int64
	manualExpanded   atomic.Int64
	speculated       atomic.Int64
	pathLength       Cost
	pathFound        bool
	start            time.Time
	elapsed          time.Duration
}

// StartClock records the wall-clock start of a run.
func (s *Stats) StartClock() {
	s.start = time.Now()
}

// StopClock records elapsed wall-clock time since StartClock.
func (s *Stats) StopClock() {
	s.elapsed = time.Since(s.start)
}

func (s *Stats) incExpanded()       { s.expanded.Add(1) }
func (s *Stats) incGenerated()      { s.generated.Add(1) }
func (s *Stats) decGenerated()      { s.generated.Add(-1) }
func (s *Stats) incDuplicated()     { s.duplicated.Add(1) }
func (s *Stats) incManualExpanded() { s.manualExpanded.Add(1) }
func (s *Stats) incSpeculated()     { s.speculated.Add(1) }

// Snapshot is the immutable, JSON-serializable view of a Stats at the end of
// a run. Field names match the §6 statistics-output key set exactly so
// cmd/spbfs can marshal a Snapshot directly.
type Snapshot struct {
	Algorithm            string  `json:"Algorithm"`
	Threads              int     `json:"Threads"`
	ExtraExpansionTime   int     `json:"Extra Expansion Time"`
	ExpandedNodes        int64   `json:"Expanded Nodes"`
	GeneratedNodes       int64   `json:"Generated Nodes"`
	DuplicatedNodes      int64   `json:"Duplicated Nodes"`
	PathLength           float64 `json:"Path Length"`
	ElapsedTime          float64 `json:"Elapsed Time"`
	ManualExpandedNodes  *int64  `json:"Manual Expanded Nodes,omitempty"`
	SpeculatedNodes      *int64  `json:"Speculated Nodes,omitempty"`
}

// Snapshot renders the current counters into a JSON-ready value.
// pathLength is -1 (the sentinel for "not found") when no goal was reached.
// algorithm, threads, and extraExpansionTime are the run's configuration,
// which Stats itself does not track.
func (s *Stats) Snapshot(algorithm string, threads, extraExpansionTime int, cafe bool) Snapshot {
	pathLength := float64(-1)
	if s.pathFound {
		pathLength = float64(s.pathLength)
	}
	snap := Snapshot{
		Algorithm:          algorithm,
		Threads:            threads,
		ExtraExpansionTime: extraExpansionTime,
		ExpandedNodes:      s.expanded.Load(),
		GeneratedNodes:     s.generated.Load(),
		DuplicatedNodes:    s.duplicated.Load(),
		PathLength:         pathLength,
		ElapsedTime:        s.elapsed.Seconds(),
	}
	if cafe {
		manual := s.manualExpanded.Load()
		speculated := s.speculated.Load()
		snap.ManualExpandedNodes = &manual
		snap.SpeculatedNodes = &speculated
	}
	return snap
}
