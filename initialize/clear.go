package initialize

import (
	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/matrix"
)

// clear opens every wall between two candidate rooms, leaving an open hall.
func clear[T any](maze *core.Maze[T], candidates *matrix.Matrix[bool]) {
	for pos := range maze.Positions() {
		if !*candidates.At(pos) {
			continue
		}
		for _, wall := range maze.Walls(pos) {
			back := maze.Back(core.WallPos{Pos: pos, Wall: wall})
			if candidate, ok := candidates.Get(back.Pos); ok && *candidate {
				maze.Open(back)
			}
		}
	}
}
