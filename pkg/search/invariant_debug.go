//go:build search_debug

package search

// checkInvariant panics with an *InvariantError when ok is false. Only
// compiled in with the search_debug build tag; release builds trust the
// invariant and pay nothing for it (see invariant_release.go).
func checkInvariant(ok bool, name string, state any) {
	if !ok {
		panic(&InvariantError{Invariant: name, State: state})
	}
}
