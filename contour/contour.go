package contour

import (
	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/matrix"
	"github.com/katalvlaran/lvlmaze/physical"
	"github.com/katalvlaran/lvlmaze/walk"
)

// Line is one closed polyline along a solid boundary. The first point is
// the starting corner; consecutive points span one wall each, and the line
// implicitly closes back to its first point.
type Line []physical.Pos

// Lines extracts every boundary of the carved rooms of maze as a closed
// polyline. Rooms never carved by a generator are not outlined.
func Lines[T any](maze *core.Maze[T]) []Line {
	v := visitor[T]{
		maze:  maze,
		drawn: matrix.New[core.Mask](maze.Width(), maze.Height()),
	}

	var lines []Line
	for pos := range maze.Positions() {
		if !maze.Room(pos).Visited {
			continue
		}
		for _, wall := range maze.Walls(pos) {
			wp := core.WallPos{Pos: pos, Wall: wall}
			if maze.IsOpen(wp) || v.visited(wp) {
				continue
			}
			if line := v.follow(wp); len(line) > 0 {
				lines = append(lines, line)
			}
		}
	}

	return lines
}

// visitor tracks which walls have already been drawn, on both sides.
type visitor[T any] struct {
	maze  *core.Maze[T]
	drawn *matrix.Matrix[core.Mask]
}

func (v *visitor[T]) visit(wp core.WallPos) {
	if mask, ok := v.drawn.Get(wp.Pos); ok {
		*mask |= wp.Wall.Mask()
	}
	back := v.maze.Back(wp)
	if mask, ok := v.drawn.Get(back.Pos); ok {
		*mask |= back.Wall.Mask()
	}
}

func (v *visitor[T]) visited(wp core.WallPos) bool {
	mask, ok := v.drawn.Get(wp.Pos)

	return ok && *mask&wp.Wall.Mask() != 0
}

// follow walks the boundary starting at wp and collects its polyline,
// marking every wall passed as drawn.
func (v *visitor[T]) follow(start core.WallPos) Line {
	var line Line
	for step := range walk.Follow(v.maze, start) {
		if v.visited(step.Wall) {
			break
		}
		v.visit(step.Wall)

		// The first point is the corner furthest from the next wall, or
		// the span start for a single-wall line.
		if len(line) == 0 {
			if step.Next != nil {
				_, far := cornersByDistance(v.maze, step.Wall, wallCenter(v.maze, *step.Next))
				line = append(line, far)
			} else {
				near, _ := v.maze.Corners(step.Wall)
				line = append(line, near)
			}
		}

		// Continue to the corner furthest from the previous point.
		_, far := cornersByDistance(v.maze, step.Wall, line[len(line)-1])
		line = append(line, far)

		// Boundaries leaving the maze are cut short.
		if step.Next != nil && !v.maze.IsInside(step.Next.Pos) {
			break
		}
	}

	return line
}

// wallCenter returns the midpoint of a wall.
func wallCenter[T any](maze *core.Maze[T], wp core.WallPos) physical.Pos {
	a, b := maze.Corners(wp)

	return physical.Pos{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// cornersByDistance returns the corners of a wall ordered by distance from
// origin, nearest first.
func cornersByDistance[T any](maze *core.Maze[T], wp core.WallPos, origin physical.Pos) (physical.Pos, physical.Pos) {
	a, b := maze.Corners(wp)
	if a.Sub(origin).Value() < b.Sub(origin).Value() {
		return a, b
	}

	return b, a
}
