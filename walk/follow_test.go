package walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/initialize"
	"github.com/katalvlaran/lvlmaze/matrix"
	"github.com/katalvlaran/lvlmaze/walk"
)

// collect drains a follow run into a slice.
func collect[T any](maze *core.Maze[T], start core.WallPos) []walk.Step {
	var steps []walk.Step
	for step := range walk.Follow(maze, start) {
		steps = append(steps, step)
	}

	return steps
}

// TestFollow_OpenWall verifies that following an open wall yields nothing.
func TestFollow_OpenWall(t *testing.T) {
	maze := core.New[struct{}](core.Quad, 2, 1)
	wp := core.WallPos{Pos: matrix.Pos{Col: 0, Row: 0}, Wall: core.QuadRight}
	maze.Open(wp)

	assert.Empty(t, collect(maze, wp))
}

// TestFollow_SingleRoom traces the four walls of a lone closed room,
// clockwise from the top.
func TestFollow_SingleRoom(t *testing.T) {
	maze := core.New[struct{}](core.Quad, 1, 1)
	origin := matrix.Pos{Col: 0, Row: 0}

	steps := collect(maze, core.WallPos{Pos: origin, Wall: core.QuadUp})

	require.Len(t, steps, 4)
	order := []*core.Wall{core.QuadUp, core.QuadRight, core.QuadDown, core.QuadLeft}
	for i, step := range steps {
		assert.Equal(t, origin, step.Wall.Pos, "step %d", i)
		assert.Same(t, order[i], step.Wall.Wall, "step %d", i)
		if i < len(steps)-1 {
			require.NotNil(t, step.Next, "step %d", i)
			assert.Equal(t, *step.Next, steps[i+1].Wall, "step %d links forward", i)
		} else {
			assert.Nil(t, step.Next, "final step closes the loop")
		}
	}
}

// TestFollow_Perimeter traces the outer boundary of a cleared maze: every
// border wall exactly once, nothing else.
func TestFollow_Perimeter(t *testing.T) {
	maze := core.New[struct{}](core.Quad, 3, 2)
	initialize.Initialize(maze, initialize.Clear, initialize.NewSystem())

	steps := collect(maze, core.WallPos{Pos: matrix.Pos{Col: 0, Row: 0}, Wall: core.QuadUp})

	require.Len(t, steps, 2*(3+2))
	seen := map[core.WallPos]bool{}
	for i, step := range steps {
		assert.False(t, maze.IsOpen(step.Wall), "step %d yields a closed wall", i)
		assert.False(t, seen[step.Wall], "step %d repeats %v", i, step.Wall)
		seen[step.Wall] = true

		back := maze.Back(step.Wall)
		assert.False(t, maze.IsInside(back.Pos), "step %d: %v is not a border wall", i, step.Wall)
	}
	assert.Nil(t, steps[len(steps)-1].Next)
}

// TestFollow_Restartable verifies the sequence can be consumed twice.
func TestFollow_Restartable(t *testing.T) {
	maze := core.New[struct{}](core.Quad, 2, 2)
	start := core.WallPos{Pos: matrix.Pos{Col: 0, Row: 0}, Wall: core.QuadLeft}

	seq := walk.Follow(maze, start)
	var first, second int
	for range seq {
		first++
	}
	for range seq {
		second++
	}

	assert.Equal(t, first, second)
	assert.Positive(t, first)
}

// TestFollow_HexBoundary verifies the follower terminates and stays closed
// on a generated hexagonal maze.
func TestFollow_HexBoundary(t *testing.T) {
	maze := core.New[struct{}](core.Hex, 6, 6)
	initialize.Initialize(maze, initialize.Branching, initialize.NewLFSR(23))

	var start core.WallPos
	found := false
	for _, wall := range maze.Walls(matrix.Pos{Col: 0, Row: 0}) {
		wp := core.WallPos{Pos: matrix.Pos{Col: 0, Row: 0}, Wall: wall}
		if !maze.IsOpen(wp) {
			start, found = wp, true
			break
		}
	}
	require.True(t, found, "corner room keeps at least one closed wall")

	steps := collect(maze, start)
	require.NotEmpty(t, steps)
	for i, step := range steps {
		assert.False(t, maze.IsOpen(step.Wall), "step %d", i)
	}
	assert.Nil(t, steps[len(steps)-1].Next)
}
