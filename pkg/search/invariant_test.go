package search

import "testing"

// checkInvariant is a no-op in the default (non search_debug) build: this
// just documents that calling it with a false condition never panics here.
func TestCheckInvariantIsNoopInReleaseBuild(t *testing.T) {
	checkInvariant(false, "deliberately violated for this test", 42)
}
