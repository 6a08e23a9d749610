package initialize

import (
	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/matrix"
)

// branching generates a maze with the randomized Prim algorithm.
//
// The candidates matrix doubles as the unvisited set: cells flip to false
// as their rooms join the spanning tree. Every emptied frontier restarts
// from a fresh random room, so disconnected candidate regions each grow
// their own tree.
func branching[T any](maze *core.Maze[T], rng Randomizer, candidates *matrix.Matrix[bool]) {
	for {
		// Seed the frontier with the walls of a random room, except those
		// leading out of the maze.
		var frontier []core.WallPos
		if pos, ok := randomRoom(rng, candidates); ok {
			*candidates.At(pos) = false
			for _, wall := range maze.Walls(pos) {
				wp := core.WallPos{Pos: pos, Wall: wall}
				if maze.IsInside(maze.Back(wp).Pos) {
					frontier = append(frontier, wp)
				}
			}
		}

		for len(frontier) > 0 {
			index := rng.Range(0, len(frontier))
			wp := frontier[index]
			frontier = append(frontier[:index], frontier[index+1:]...)

			// Walk through the wall if the room on the other side has not
			// been visited before.
			next := maze.Back(wp).Pos
			if unvisited, ok := candidates.Get(next); !ok || !*unvisited {
				continue
			}
			*candidates.At(wp.Pos) = false
			*candidates.At(next) = false
			maze.Open(wp)

			// Extend the frontier with the walls of the new room leading to
			// unvisited candidates.
			for _, wall := range maze.Walls(next) {
				wp := core.WallPos{Pos: next, Wall: wall}
				if unvisited, ok := candidates.Get(maze.Back(wp).Pos); ok && *unvisited {
					frontier = append(frontier, wp)
				}
			}
		}

		remaining := false
		for value := range candidates.Values() {
			if value {
				remaining = true

				break
			}
		}
		if !remaining {
			return
		}
	}
}
