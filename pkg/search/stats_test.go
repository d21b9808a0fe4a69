package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsSnapshotNoPathFoundUsesSentinel(t *testing.T) {
	var stats Stats
	stats.StartClock()
	stats.incExpanded()
	stats.incGenerated()
	stats.StopClock()

	snap := stats.Snapshot("astar", 1, 0, false)
	assert.Equal(t, "astar", snap.Algorithm)
	assert.Equal(t, int64(1), snap.ExpandedNodes)
	assert.Equal(t, int64(1), snap.GeneratedNodes)
	assert.Equal(t, float64(-1), snap.PathLength, "no goal reached must report the -1 sentinel")
	assert.Nil(t, snap.ManualExpandedNodes)
	assert.Nil(t, snap.SpeculatedNodes)
}

func TestStatsSnapshotPathFoundReportsLength(t *testing.T) {
	var stats Stats
	stats.StartClock()
	stats.pathFound = true
	stats.pathLength = 7
	stats.StopClock()

	snap := stats.Snapshot("kbfs", 4, 2, false)
	assert.Equal(t, float64(7), snap.PathLength)
	assert.Equal(t, 4, snap.Threads)
	assert.Equal(t, 2, snap.ExtraExpansionTime)
}

func TestStatsSnapshotCAFEIncludesManualAndSpeculatedPointers(t *testing.T) {
	var stats Stats
	stats.StartClock()
	stats.incManualExpanded()
	stats.incManualExpanded()
	stats.incSpeculated()
	stats.StopClock()

	snap := stats.Snapshot("cafe", 2, 0, true)
	require.NotNil(t, snap.ManualExpandedNodes)
	require.NotNil(t, snap.SpeculatedNodes)
	assert.Equal(t, int64(2), *snap.ManualExpandedNodes)
	assert.Equal(t, int64(1), *snap.SpeculatedNodes)
}

func TestStatsDecGeneratedCancelsIncrement(t *testing.T) {
	var stats Stats
	stats.incGenerated()
	stats.incGenerated()
	stats.decGenerated()
	assert.Equal(t, int64(1), stats.generated.Load())
}
