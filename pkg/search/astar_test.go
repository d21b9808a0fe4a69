package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAStarFindsOptimalNumberPath(t *testing.T) {
	eng := NewAStar[int]()
	result, err := eng.Run(context.Background(), numberProblem{start: 1, target: 10})

	require.NoError(t, err)
	require.NotEmpty(t, result.Path)
	assert.Equal(t, 1, result.Path[0])
	assert.Equal(t, 10, result.Path[len(result.Path)-1])
	assert.Equal(t, Cost(len(result.Path)-1), result.Stats.pathLength)
	assert.True(t, result.Stats.pathFound)
	assert.NotEmpty(t, result.RunID)
}

func TestAStarOnGridFindsShortestPath(t *testing.T) {
	p := gridProblem{
		rows: 5, cols: 5,
		start: [2]int{0, 0},
		goal:  [2]int{4, 4},
	}
	eng := NewAStar[[2]int]()
	result, err := eng.Run(context.Background(), p)

	require.NoError(t, err)
	assert.True(t, validGridPath(p, result.Path))
	assert.Equal(t, p.start, result.Path[0])
	assert.Equal(t, p.goal, result.Path[len(result.Path)-1])
	assert.Equal(t, 8, len(result.Path)-1, "shortest 4-connected path on an open 5x5 grid corner-to-corner is 8 moves")
}

func TestAStarNoPathWhenGoalWalledOff(t *testing.T) {
	// goal (2,2) is a grid corner with only two neighbors, (1,2) and (2,1);
	// walling both off makes it unreachable.
	p := gridProblem{
		rows: 3, cols: 3,
		start: [2]int{0, 0},
		goal:  [2]int{2, 2},
		walls: map[[2]int]bool{
			{1, 2}: true,
			{2, 1}: true,
		},
	}

	eng := NewAStar[[2]int]()
	result, err := eng.Run(context.Background(), p)

	require.NoError(t, err)
	assert.Empty(t, result.Path)
	assert.False(t, result.Stats.pathFound)
	assert.Greater(t, result.Stats.expanded.Load(), int64(0), "search must still have expanded nodes before exhausting the frontier")
}

func TestAStarRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := NewAStar[int]()
	_, err := eng.Run(ctx, numberProblem{start: 1, target: 1_000_000})
	assert.Error(t, err)
}

func TestAStarIsDeterministicAcrossRuns(t *testing.T) {
	p := gridProblem{rows: 6, cols: 6, start: [2]int{0, 0}, goal: [2]int{5, 5}}
	eng := NewAStar[[2]int]()

	r1, err := eng.Run(context.Background(), p)
	require.NoError(t, err)
	r2, err := eng.Run(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, r1.Path, r2.Path)
}
