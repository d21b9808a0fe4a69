//go:build !search_debug

package search

// checkInvariant is a no-op in release builds; the search_debug build tag
// swaps in the panicking version (invariant_debug.go).
func checkInvariant(ok bool, name string, state any) {}
