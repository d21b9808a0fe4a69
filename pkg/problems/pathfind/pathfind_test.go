package pathfind

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleGridNoGoalsIsImmediatelyDone(t *testing.T) {
	grid := "3 3\n" +
		"V..\n" +
		"...\n" +
		"...\n"
	p, err := Parse(strings.NewReader(grid))
	require.NoError(t, err)

	assert.Equal(t, 0, p.InitialState().Pos)
	assert.EqualValues(t, 0, p.Heuristic(p.InitialState()), "no goals means the grid is already solved")
}

func TestParseWithWallsBlocksSuccessors(t *testing.T) {
	grid := "3 3\n" +
		"V#.\n" +
		"###\n" +
		"...\n"
	p, err := Parse(strings.NewReader(grid))
	require.NoError(t, err)

	succ := p.Successors(p.InitialState())
	assert.Empty(t, succ, "actor at (0,0) is boxed in by walls at (0,1) and (1,0)")
}

func TestGoalBitClearedOnPickup(t *testing.T) {
	grid := "1 3\n" +
		"V*.\n"
	p, err := Parse(strings.NewReader(grid))
	require.NoError(t, err)

	start := p.InitialState()
	require.NotZero(t, start.Remaining)

	succ := p.Successors(start)
	require.Len(t, succ, 1)
	onGoal := succ[0]
	assert.Zero(t, onGoal.Remaining, "stepping onto the only goal must clear its bit")
	assert.EqualValues(t, 0, p.Heuristic(onGoal))
}

func TestHeuristicIsNearestRemainingGoalDistance(t *testing.T) {
	grid := "1 5\n" +
		"V.*.*\n"
	p, err := Parse(strings.NewReader(grid))
	require.NoError(t, err)

	// nearer goal is at column 2, two steps away
	assert.EqualValues(t, 2, p.Heuristic(p.InitialState()))
}

func TestParseRejectsMissingActor(t *testing.T) {
	grid := "2 2\n..\n..\n"
	_, err := Parse(strings.NewReader(grid))
	assert.Error(t, err)
}

func TestParseRejectsNonPositiveDimensions(t *testing.T) {
	_, err := Parse(strings.NewReader("0 3\n"))
	assert.Error(t, err)
}

func TestMaxActionCountIsFour(t *testing.T) {
	var p Problem
	assert.Equal(t, 4, p.MaxActionCount())
}
