package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/matrix"
	"github.com/katalvlaran/lvlmaze/physical"
)

const geoDelta = 1e-9

// TestRoomAt_InvertsCenter verifies that the centre of every room maps back
// to that room, across all parities of a grid.
func TestRoomAt_InvertsCenter(t *testing.T) {
	for _, shape := range shapes {
		for pos := range matrix.New[struct{}](6, 6).Positions() {
			assert.Equal(t, pos, shape.RoomAt(shape.Center(pos)), "%v at %v", shape, pos)
		}
	}
}

// TestCorners_SharedBetweenSides verifies that both sides of a wall span the
// same physical segment, with the corner order reversed.
func TestCorners_SharedBetweenSides(t *testing.T) {
	for _, shape := range shapes {
		for _, pos := range parityPositions() {
			for _, wall := range shape.Walls(pos) {
				wp := core.WallPos{Pos: pos, Wall: wall}
				start, end := shape.Corners(wp)
				backStart, backEnd := shape.Corners(shape.Back(wp))

				assert.InDelta(t, start.X, backEnd.X, geoDelta, "%v %v", shape, wp)
				assert.InDelta(t, start.Y, backEnd.Y, geoDelta, "%v %v", shape, wp)
				assert.InDelta(t, end.X, backStart.X, geoDelta, "%v %v", shape, wp)
				assert.InDelta(t, end.Y, backStart.Y, geoDelta, "%v %v", shape, wp)
			}
		}
	}
}

// TestCornerWalls_ShareStartCorner verifies that every listed wall touches
// the start corner of the anchor wall with one of its own corners.
func TestCornerWalls_ShareStartCorner(t *testing.T) {
	for _, shape := range shapes {
		for _, pos := range parityPositions() {
			for _, wall := range shape.Walls(pos) {
				wp := core.WallPos{Pos: pos, Wall: wall}
				corner, _ := shape.Corners(wp)

				walls := shape.CornerWalls(wp)
				require.NotEmpty(t, walls, "%v %v", shape, wp)
				assert.Equal(t, wp, walls[0], "%v: list starts with the anchor", shape)

				for _, other := range walls {
					start, end := shape.Corners(other)
					assert.True(t,
						corner.Sub(start).Value() < 1e-6 || corner.Sub(end).Value() < 1e-6,
						"%v: %v does not touch corner of %v", shape, other, wp)
				}
			}
		}
	}
}

// TestWallPosAt resolves points near a wall midpoint to that wall.
func TestWallPosAt(t *testing.T) {
	for _, shape := range shapes {
		for _, pos := range parityPositions() {
			for _, wall := range shape.Walls(pos) {
				wp := core.WallPos{Pos: pos, Wall: wall}
				start, end := shape.Corners(wp)
				center := shape.Center(pos)

				// Probe slightly inside the room from the wall midpoint so
				// the point stays in this room.
				probe := physical.Pos{
					X: (start.X+end.X)/2*0.9 + center.X*0.1,
					Y: (start.Y+end.Y)/2*0.9 + center.Y*0.1,
				}

				got := shape.WallPosAt(probe)
				assert.Equal(t, pos, got.Pos, "%v wall %v", shape, wall)
				assert.Same(t, wall, got.Wall, "%v wall %v", shape, wall)
			}
		}
	}
}

// TestViewbox_ContainsAllCorners verifies that the maze viewbox covers every
// wall corner of every room.
func TestViewbox_ContainsAllCorners(t *testing.T) {
	for _, shape := range shapes {
		maze := core.New[struct{}](shape, 5, 4)
		viewbox := maze.Viewbox().Expand(geoDelta)

		for pos := range maze.Positions() {
			for _, wall := range maze.Walls(pos) {
				corner, _ := maze.Corners(core.WallPos{Pos: pos, Wall: wall})
				assert.True(t, viewbox.Contains(corner), "%v corner %v of %v at %v", shape, corner, wall, pos)
			}
		}
	}
}

// TestMinimalDimensions_Covers verifies that a maze of the minimal
// dimensions for a physical extent has a viewbox at least that large.
func TestMinimalDimensions_Covers(t *testing.T) {
	extents := []struct{ width, height float64 }{
		{1, 1}, {3, 2}, {10, 10}, {0.1, 25}, {17.3, 4.2},
	}

	for _, shape := range shapes {
		for _, extent := range extents {
			cols, rows := shape.MinimalDimensions(extent.width, extent.height)
			require.Positive(t, cols, "%v %+v", shape, extent)
			require.Positive(t, rows, "%v %+v", shape, extent)

			viewbox := shape.Viewbox(cols, rows)
			assert.GreaterOrEqual(t, viewbox.Width+geoDelta, extent.width, "%v %+v", shape, extent)
			assert.GreaterOrEqual(t, viewbox.Height+geoDelta, extent.height, "%v %+v", shape, extent)
		}
	}
}

// TestRoomsTouchedBy_CoversViewboxRooms verifies that every room whose
// centre lies inside the query box is reported.
func TestRoomsTouchedBy_CoversViewboxRooms(t *testing.T) {
	for _, shape := range shapes {
		maze := core.New[struct{}](shape, 6, 6)
		center := maze.Center(matrix.Pos{Col: 2, Row: 2})
		viewbox := physical.CenteredAt(center, 3, 3)

		touched := map[matrix.Pos]bool{}
		for _, pos := range maze.RoomsTouchedBy(viewbox) {
			assert.False(t, touched[pos], "%v: duplicate %v", shape, pos)
			touched[pos] = true
		}

		for pos := range maze.Positions() {
			if viewbox.Contains(maze.Center(pos)) {
				assert.True(t, touched[pos], "%v: missing %v", shape, pos)
			}
		}
	}
}
