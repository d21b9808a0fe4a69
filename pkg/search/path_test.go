package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconstructPathWalksParentsAndReverses(t *testing.T) {
	arena := NewArena[string]()
	start := arena.New("A", 0, 0, nil)
	mid := arena.New("B", 1, 0, start)
	goal := arena.New("C", 2, 0, mid)

	path := reconstructPath(goal)
	assert.Equal(t, []string{"A", "B", "C"}, path)
}

func TestReconstructPathSingleNode(t *testing.T) {
	arena := NewArena[string]()
	start := arena.New("A", 0, 0, nil)
	assert.Equal(t, []string{"A"}, reconstructPath(start))
}
