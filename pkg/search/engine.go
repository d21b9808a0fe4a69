package search

import "fmt"

// New constructs the named engine ("astar", "kbfs", "spastar", or "cafe")
// with the given options. It is the single switchboard cmd/spbfs and any
// other caller use to turn a CLI/config algorithm name into a runnable
// Engine, so adding a fifth engine only means adding one case here.
func New[S comparable](algorithm string, opts ...Option) (Engine[S], error) {
	switch algorithm {
	case "astar":
		return NewAStar[S](opts...), nil
	case "kbfs":
		return NewKBFS[S](opts...), nil
	case "spastar":
		return NewSPAStar[S](opts...), nil
	case "cafe":
		return NewCAFE[S](opts...), nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ErrUsage, algorithm)
	}
}
