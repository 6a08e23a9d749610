package initialize

import (
	"slices"

	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/matrix"
)

// braid generates a maze without dead ends: it clears the candidate area,
// then re-closes walls in random order wherever both adjacent rooms keep
// more than two open walls, and finally reconnects any areas the closing
// separated.
func braid[T any](maze *core.Maze[T], rng Randomizer, candidates *matrix.Matrix[bool]) {
	clear(maze, candidates)

	// Collect every wall between two candidate rooms once, keyed by its
	// canonical side, in a stable order so seeded runs reproduce.
	seen := map[core.WallPos]struct{}{}
	var walls []core.WallPos
	for pos := range maze.Positions() {
		if !*candidates.At(pos) {
			continue
		}
		for _, wall := range maze.Walls(pos) {
			wp := core.WallPos{Pos: pos, Wall: wall}
			back := maze.Back(wp)
			if candidate, ok := candidates.Get(back.Pos); !ok || !*candidate {
				continue
			}
			canonical := wp
			if d := back.Pos.Compare(wp.Pos); d < 0 {
				canonical = back
			}
			if _, ok := seen[canonical]; !ok {
				seen[canonical] = struct{}{}
				walls = append(walls, canonical)
			}
		}
	}
	slices.SortFunc(walls, func(a, b core.WallPos) int {
		if d := a.Pos.Compare(b.Pos); d != 0 {
			return d
		}

		return a.Wall.Index - b.Wall.Index
	})

	// Shuffle with full-range swaps.
	for i := range walls {
		j := rng.Range(0, len(walls))
		walls[i], walls[j] = walls[j], walls[i]
	}

	// Re-close every wall that does not create a dead end.
	for _, wp := range walls {
		back := maze.Back(wp)
		if maze.Room(wp.Pos).OpenWalls() > 2 && maze.Room(back.Pos).OpenWalls() > 2 {
			maze.Close(wp)
		}
	}

	ConnectAll(maze, rng, func(pos matrix.Pos) bool {
		candidate, ok := candidates.Get(pos)

		return ok && *candidate
	})
}
