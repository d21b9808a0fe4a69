package search

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontierHeapOrdersByFThenByDeeperG(t *testing.T) {
	arena := NewArena[int]()
	fh := NewFrontierHeap[int]()

	a := arena.New(1, 2, 3, nil) // f=5, g=2
	b := arena.New(2, 5, 0, nil) // f=5, g=5 (same f, deeper: should come first)
	c := arena.New(3, 0, 1, nil) // f=1 (smallest: should come first overall)

	fh.Push(a)
	fh.Push(b)
	fh.Push(c)

	require.Equal(t, 3, fh.Size())
	assert.Same(t, c, fh.Pop())
	assert.Same(t, b, fh.Pop(), "on an f tie the deeper (larger g) node pops first")
	assert.Same(t, a, fh.Pop())
	assert.True(t, fh.Empty())
}

func TestFrontierHeapUpdateDecreasesKey(t *testing.T) {
	arena := NewArena[int]()
	fh := NewFrontierHeap[int]()

	n1 := arena.New(1, 10, 0, nil) // f=10
	n2 := arena.New(2, 5, 0, nil)  // f=5
	fh.Push(n1)
	fh.Push(n2)

	n1.G = 0
	n1.F = 0
	fh.Update(n1)

	assert.Same(t, n1, fh.Top(), "decrease-key must re-establish heap order without a full rebuild")
}

func TestFrontierHeapRandomizedOrderIsSortedByComparator(t *testing.T) {
	arena := NewArena[int]()
	fh := NewFrontierHeap[int]()

	rng := rand.New(rand.NewSource(1))
	const n = 200
	for i := 0; i < n; i++ {
		g := Cost(rng.Intn(50))
		h := Cost(rng.Intn(50))
		fh.Push(arena.New(i, g, h, nil))
	}

	var lastF, lastG Cost
	first := true
	for !fh.Empty() {
		node := fh.Pop()
		if !first {
			assert.True(t, node.F > lastF || (node.F == lastF && node.G <= lastG),
				"heap must pop in non-decreasing f order, preferring larger g within a tie")
		}
		lastF, lastG = node.F, node.G
		first = false
	}
}
