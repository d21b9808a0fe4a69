package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSPAStarSingleThreadDegeneratesToSequentialCost(t *testing.T) {
	p := gridProblem{rows: 5, cols: 5, start: [2]int{0, 0}, goal: [2]int{4, 4}}

	seq, err := NewAStar[[2]int]().Run(context.Background(), p)
	require.NoError(t, err)

	spa, err := NewSPAStar[[2]int](WithThreads(1)).Run(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, len(seq.Path), len(spa.Path))
}

func TestSPAStarMultiThreadFindsOptimalPath(t *testing.T) {
	p := gridProblem{rows: 6, cols: 6, start: [2]int{0, 0}, goal: [2]int{5, 5}}

	for _, threads := range []int{2, 4, 8} {
		result, err := NewSPAStar[[2]int](WithThreads(threads)).Run(context.Background(), p)
		require.NoError(t, err)
		assert.True(t, validGridPath(p, result.Path), "threads=%d must still produce a legal path", threads)
		assert.Equal(t, 10, len(result.Path)-1, "threads=%d must still find the optimal path length", threads)
	}
}

func TestSPAStarNoPathFound(t *testing.T) {
	p := gridProblem{
		rows: 3, cols: 3,
		start: [2]int{0, 0},
		goal:  [2]int{2, 2},
		walls: map[[2]int]bool{
			{1, 2}: true,
			{2, 1}: true,
		},
	}
	result, err := NewSPAStar[[2]int](WithThreads(4)).Run(context.Background(), p)

	require.NoError(t, err)
	assert.Empty(t, result.Path)
	assert.False(t, result.Stats.pathFound)
}

func TestSPAStarZeroThreadsFallsBackToOne(t *testing.T) {
	p := numberProblem{start: 1, target: 5}
	result, err := NewSPAStar[int](WithThreads(0)).Run(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, 5, result.Path[len(result.Path)-1])
}
