package heatmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/heatmap"
	"github.com/katalvlaran/lvlmaze/initialize"
	"github.com/katalvlaran/lvlmaze/matrix"
)

// TestCollect_Corridor counts traversals through a hand-carved corridor.
func TestCollect_Corridor(t *testing.T) {
	maze := core.New[struct{}](core.Quad, 3, 1)
	maze.Open(core.WallPos{Pos: matrix.Pos{Col: 0, Row: 0}, Wall: core.QuadRight})
	maze.Open(core.WallPos{Pos: matrix.Pos{Col: 1, Row: 0}, Wall: core.QuadRight})

	heat := heatmap.Collect(maze, []heatmap.Pair{
		{From: matrix.Pos{Col: 0, Row: 0}, To: matrix.Pos{Col: 2, Row: 0}},
		{From: matrix.Pos{Col: 1, Row: 0}, To: matrix.Pos{Col: 2, Row: 0}},
	})

	assert.Equal(t, uint32(1), *heat.At(matrix.Pos{Col: 0, Row: 0}))
	assert.Equal(t, uint32(2), *heat.At(matrix.Pos{Col: 1, Row: 0}))
	assert.Equal(t, uint32(2), *heat.At(matrix.Pos{Col: 2, Row: 0}))
}

// TestCollect_SkipsDisconnected verifies that unconnected pairs contribute
// nothing.
func TestCollect_SkipsDisconnected(t *testing.T) {
	maze := core.New[struct{}](core.Quad, 2, 1)

	heat := heatmap.Collect(maze, []heatmap.Pair{
		{From: matrix.Pos{Col: 0, Row: 0}, To: matrix.Pos{Col: 1, Row: 0}},
	})

	for pos := range heat.Positions() {
		assert.Zero(t, *heat.At(pos), "at %v", pos)
	}
}

// TestCollectParallel_MatchesSerial verifies that the fan-out merge yields
// the same counts as the serial collection.
func TestCollectParallel_MatchesSerial(t *testing.T) {
	maze := core.New[struct{}](core.Quad, 12, 10)
	initialize.Initialize(maze, initialize.Braid, initialize.NewLFSR(31))

	pairs := heatmap.Full.Pairs(maze.Width(), maze.Height())
	serial := heatmap.Collect(maze, pairs)

	for _, workers := range []int{0, 1, 2, 3, 16, 100} {
		parallel := heatmap.CollectParallel(maze, pairs, workers)
		for pos := range serial.Positions() {
			require.Equal(t, *serial.At(pos), *parallel.At(pos), "workers %d at %v", workers, pos)
		}
	}
}

// TestType_Pairs verifies the endpoint generators.
func TestType_Pairs(t *testing.T) {
	vertical := heatmap.Vertical.Pairs(4, 3)
	require.Len(t, vertical, 4)
	for col, pair := range vertical {
		assert.Equal(t, matrix.Pos{Col: col, Row: 0}, pair.From)
		assert.Equal(t, matrix.Pos{Col: col, Row: 2}, pair.To)
	}

	horizontal := heatmap.Horizontal.Pairs(4, 3)
	require.Len(t, horizontal, 3)
	for row, pair := range horizontal {
		assert.Equal(t, matrix.Pos{Col: 0, Row: row}, pair.From)
		assert.Equal(t, matrix.Pos{Col: 3, Row: row}, pair.To)
	}

	// Full pairs every top and left edge room with its mirror; the shared
	// corner room appears once.
	full := heatmap.Full.Pairs(4, 3)
	require.Len(t, full, 4+3-1)
	for _, pair := range full {
		assert.Equal(t, matrix.Pos{Col: 3 - pair.From.Col, Row: 2 - pair.From.Row}, pair.To)
		assert.True(t, pair.From.Col == 0 || pair.From.Row == 0, "%v", pair.From)
	}
}

// TestParseType_RoundTrip verifies the name mapping.
func TestParseType_RoundTrip(t *testing.T) {
	for _, typ := range []heatmap.Type{heatmap.Vertical, heatmap.Horizontal, heatmap.Full} {
		parsed, err := heatmap.ParseType(typ.String())

		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}

	_, err := heatmap.ParseType("diagonal")
	assert.ErrorIs(t, err, heatmap.ErrUnknownType)
}

// TestGenerate verifies endpoint rooms are the hottest on a cleared maze.
func TestGenerate(t *testing.T) {
	maze := core.New[struct{}](core.Quad, 5, 5)
	initialize.Initialize(maze, initialize.Clear, initialize.NewSystem())

	heat := heatmap.Generate(maze, heatmap.Vertical)

	// Every column walk passes through its own top and bottom rooms.
	for col := 0; col < 5; col++ {
		assert.GreaterOrEqual(t, *heat.At(matrix.Pos{Col: col, Row: 0}), uint32(1), "col %d", col)
		assert.GreaterOrEqual(t, *heat.At(matrix.Pos{Col: col, Row: 4}), uint32(1), "col %d", col)
	}

	// Each walk visits exactly height rooms, shortest paths being straight.
	total := uint32(0)
	for pos := range heat.Positions() {
		total += *heat.At(pos)
	}
	assert.Equal(t, uint32(5*5), total)
}
