package physical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/physical"
)

// TestCenteredAt verifies corner placement and the Center round trip.
func TestCenteredAt(t *testing.T) {
	center := physical.Pos{X: 5, Y: 3}

	box := physical.CenteredAt(center, 4, 2)

	assert.Equal(t, physical.Pos{X: 3, Y: 2}, box.Corner)
	assert.Equal(t, center, box.Center())
}

// TestTuple verifies the flattened accessor.
func TestTuple(t *testing.T) {
	box := physical.ViewBox{Corner: physical.Pos{X: 1, Y: 2}, Width: 3, Height: 4}

	x, y, w, h := box.Tuple()

	assert.Equal(t, [4]float64{1, 2, 3, 4}, [4]float64{x, y, w, h})
}

// TestExpand verifies growth and contraction.
func TestExpand(t *testing.T) {
	box := physical.ViewBox{Corner: physical.Pos{X: 1, Y: 1}, Width: 2, Height: 2}

	grown := box.Expand(1)
	require.Equal(t, physical.ViewBox{Corner: physical.Pos{X: 0, Y: 0}, Width: 4, Height: 4}, grown)

	shrunk := grown.Expand(-1)
	assert.Equal(t, box, shrunk)
}

// TestContains checks interior, edge and outside points. The box is wider
// than tall so that a mixed-up width/height bound would be caught.
func TestContains(t *testing.T) {
	box := physical.ViewBox{Corner: physical.Pos{X: 0, Y: 0}, Width: 10, Height: 2}

	cases := []struct {
		name string
		pos  physical.Pos
		want bool
	}{
		{"Interior", physical.Pos{X: 5, Y: 1}, true},
		{"TopLeftCorner", physical.Pos{X: 0, Y: 0}, true},
		{"BottomRightCorner", physical.Pos{X: 10, Y: 2}, true},
		{"RightEdge", physical.Pos{X: 10, Y: 1}, true},
		{"BelowBoxWithinWidth", physical.Pos{X: 5, Y: 5}, false},
		{"RightOfBox", physical.Pos{X: 10.1, Y: 1}, false},
		{"AboveBox", physical.Pos{X: 5, Y: -0.1}, false},
		{"LeftOfBox", physical.Pos{X: -0.1, Y: 1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, box.Contains(tc.pos))
		})
	}
}

// TestScale verifies uniform scaling of corner and extent.
func TestScale(t *testing.T) {
	box := physical.ViewBox{Corner: physical.Pos{X: 1, Y: 2}, Width: 3, Height: 4}

	scaled := box.Scale(2)

	assert.Equal(t, physical.ViewBox{Corner: physical.Pos{X: 2, Y: 4}, Width: 6, Height: 8}, scaled)
}

// TestSplitVertical verifies the left/right partition along x=at.
func TestSplitVertical(t *testing.T) {
	box := physical.ViewBox{Corner: physical.Pos{X: 0, Y: 0}, Width: 10, Height: 4}

	left, right := box.SplitVertical(3)

	assert.Equal(t, physical.ViewBox{Corner: physical.Pos{X: 0, Y: 0}, Width: 3, Height: 4}, left)
	assert.Equal(t, physical.ViewBox{Corner: physical.Pos{X: 3, Y: 0}, Width: 7, Height: 4}, right)
}

// TestSplitHorizontal verifies the top/bottom partition along y=at.
func TestSplitHorizontal(t *testing.T) {
	box := physical.ViewBox{Corner: physical.Pos{X: 0, Y: 1}, Width: 4, Height: 9}

	top, bottom := box.SplitHorizontal(4)

	assert.Equal(t, physical.ViewBox{Corner: physical.Pos{X: 0, Y: 1}, Width: 4, Height: 3}, top)
	assert.Equal(t, physical.ViewBox{Corner: physical.Pos{X: 0, Y: 4}, Width: 4, Height: 6}, bottom)
}

// TestBounds verifies the bounding box of a point cloud and the empty case.
func TestBounds(t *testing.T) {
	points := []physical.Pos{
		{X: 2, Y: 1},
		{X: -1, Y: 4},
		{X: 0.5, Y: -3},
	}

	box := physical.Bounds(func(yield func(physical.Pos) bool) {
		for _, p := range points {
			if !yield(p) {
				return
			}
		}
	})

	require.Equal(t, physical.ViewBox{Corner: physical.Pos{X: -1, Y: -3}, Width: 3, Height: 7}, box)

	for _, p := range points {
		assert.True(t, box.Contains(p))
	}

	empty := physical.Bounds(func(func(physical.Pos) bool) {})
	assert.Equal(t, physical.ViewBox{}, empty)
}
