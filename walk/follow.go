package walk

import (
	"iter"

	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/matrix"
)

// Step is one wall along a boundary traversal. Next is the wall the
// follower moves to afterwards; it is nil on the final step, when the
// traversal has returned to its starting wall.
type Step struct {
	Wall core.WallPos
	Next *core.WallPos
}

// Follow hugs the solid boundary containing the closed wall start,
// clockwise, yielding every closed wall along it without crossing an open
// wall, until the starting wall recurs. Starting from an open wall yields
// nothing. The sequence is restartable.
//
// The walking direction along a wall is from its span start to its span
// end; at each corner the follower takes the sharpest available turn whose
// wall is closed, wrapping around to the back of the current wall when
// everything else at the corner is open.
func Follow[T any](maze *core.Maze[T], start core.WallPos) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		if maze.IsOpen(start) {
			return
		}
		current := start
		for {
			previous := current
			current = nextWallPos(maze, current)
			if current == start {
				yield(Step{Wall: previous})

				return
			}
			next := current
			if !yield(Step{Wall: previous, Next: &next}) {
				return
			}
		}
	}
}

// nextWallPos finds the wall following wp along the boundary: the first
// closed wall around the end corner of wp's span, scanning from the other
// side of the wall, or that other side itself when the whole corner is
// open.
func nextWallPos[T any](maze *core.Maze[T], wp core.WallPos) core.WallPos {
	back := maze.Back(wp)
	for _, offset := range back.Wall.CornerWallOffsets {
		candidate := core.WallPos{
			Pos:  matrix.Pos{Col: back.Pos.Col + offset.Dx, Row: back.Pos.Row + offset.Dy},
			Wall: offset.Wall,
		}
		if !maze.IsOpen(candidate) {
			return candidate
		}
	}

	return back
}
