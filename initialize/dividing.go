package initialize

import (
	"math"

	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/matrix"
	"github.com/katalvlaran/lvlmaze/physical"
)

// dividing generates a maze by recursive division: it clears the candidate
// area, then recursively cuts the physical plane with straight walls,
// closing every candidate wall crossing a cut, until the pieces shrink
// below a threshold derived from the distance between adjacent rooms.
func dividing[T any](maze *core.Maze[T], rng Randomizer, candidates *matrix.Matrix[bool]) {
	clear(maze, candidates)

	// Stop recursing when a piece's side falls below twice the distance
	// between two diagonal room centres.
	diagonal := maze.Center(matrix.Pos{Col: 0, Row: 0}).
		Sub(maze.Center(matrix.Pos{Col: 1, Row: 1}))
	threshold := 2 * math.Sqrt(diagonal.Value())

	applySplit(maze, splitViewbox(maze.Viewbox(), rng), rng, candidates, threshold)
}

// divisionSplit is one planned cut: a piece of the plane and the coordinate
// of the straight line dividing it.
type divisionSplit struct {
	viewbox  physical.ViewBox
	vertical bool
	at       float64
}

// splitViewbox plans a cut through viewbox at a random 20-100% of its
// longer dimension.
func splitViewbox(viewbox physical.ViewBox, rng Randomizer) divisionSplit {
	cut := 0.8*rng.Random() + 0.2
	if viewbox.Width > viewbox.Height {
		return divisionSplit{
			viewbox:  viewbox,
			vertical: true,
			at:       viewbox.Corner.X + cut*viewbox.Width,
		}
	}

	return divisionSplit{
		viewbox: viewbox,
		at:      viewbox.Corner.Y + cut*viewbox.Height,
	}
}

// before reports whether pos lies on the lesser side of the cut line.
func (s divisionSplit) before(pos physical.Pos) bool {
	if s.vertical {
		return pos.X < s.at
	}

	return pos.Y < s.at
}

// applySplit closes every candidate wall crossing the cut line and recurses
// into the two pieces while they remain above the threshold.
func applySplit[T any](maze *core.Maze[T], s divisionSplit, rng Randomizer, candidates *matrix.Matrix[bool], threshold float64) {
	for pos := range maze.Positions() {
		if !*candidates.At(pos) {
			continue
		}
		side := s.before(maze.Center(pos))
		for _, wall := range maze.Walls(pos) {
			wp := core.WallPos{Pos: pos, Wall: wall}
			back := maze.Back(wp)
			if candidate, ok := candidates.Get(back.Pos); !ok || !*candidate {
				continue
			}
			if side != s.before(maze.Center(back.Pos)) {
				maze.Close(wp)
			}
		}
	}

	var first, second physical.ViewBox
	if s.vertical {
		first, second = s.viewbox.SplitVertical(s.at)
	} else {
		first, second = s.viewbox.SplitHorizontal(s.at)
	}
	for _, piece := range [2]divisionSplit{
		splitViewbox(first, rng),
		splitViewbox(second, rng),
	} {
		if piece.viewbox.Width > threshold*(1+rng.Random()) &&
			piece.viewbox.Height > threshold*(1+rng.Random()) {
			applySplit(maze, piece, rng, candidates, threshold)
		}
	}
}
