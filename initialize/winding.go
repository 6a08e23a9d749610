package initialize

import (
	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/matrix"
)

// winding generates a maze with depth-first backtracking: walk to random
// unvisited neighbours, backtrack on dead ends, and restart from a fresh
// random room when the trail is exhausted while candidates remain.
func winding[T any](maze *core.Maze[T], rng Randomizer, candidates *matrix.Matrix[bool]) {
	var trail []matrix.Pos
	current, ok := randomRoom(rng, candidates)
	if !ok {
		return
	}

	for {
		*candidates.At(current) = false

		// The walls of the current room leading to unvisited candidates.
		var moves []core.WallPos
		for _, wall := range maze.Walls(current) {
			wp := core.WallPos{Pos: current, Wall: wall}
			if unvisited, ok := candidates.Get(maze.Back(wp).Pos); ok && *unvisited {
				moves = append(moves, wp)
			}
		}

		if len(moves) > 0 {
			wp := moves[rng.Range(0, len(moves))]
			maze.Open(wp)
			trail = append(trail, current)
			current = maze.Back(wp).Pos

			continue
		}

		// Dead end: backtrack, or restart in another region.
		if len(trail) > 0 {
			current = trail[len(trail)-1]
			trail = trail[:len(trail)-1]
		} else if current, ok = randomRoom(rng, candidates); !ok {
			return
		}
	}
}
