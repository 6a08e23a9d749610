package initialize

import (
	"slices"

	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/matrix"
)

// ConnectAll ensures every pair of adjacent filtered areas is connected: it
// labels the connected areas of the maze restricted to filter, then opens
// one uniformly random wall between each pair of touching areas. Areas are
// visited in a deterministic order, so seeded runs reproduce.
func ConnectAll[T any](maze *core.Maze[T], rng Randomizer, filter Filter) {
	// Label each connected area of filtered rooms, starting at 1.
	areas := matrix.New[uint32](maze.Width(), maze.Height())
	var label uint32
	for pos := range maze.Positions() {
		if !filter(pos) || *areas.At(pos) > 0 {
			continue
		}
		label++
		matrix.Fill(areas, pos, label, func(p matrix.Pos) []matrix.Pos {
			var next []matrix.Pos
			for n := range maze.Neighbors(p) {
				if filter(n) {
					next = append(next, n)
				}
			}

			return next
		})
	}

	// Open one random connecting wall per pair of touching areas.
	for _, edge := range matrix.Edges(areas, func(p matrix.Pos) []matrix.Pos {
		return slices.Collect(maze.Adjacent(p))
	}) {
		if edge.Low == 0 {
			continue
		}
		var walls []core.WallPos
		for _, pair := range edge.Pairs {
			if wp, ok := maze.ConnectingWall(pair.From, pair.To); ok {
				walls = append(walls, wp)
			}
		}
		if len(walls) > 0 {
			maze.Open(walls[rng.Range(0, len(walls))])
		}
	}
}
