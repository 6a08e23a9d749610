package initialize

import (
	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/matrix"
)

// spelunker carves a maze by executing an instruction program cyclically
// from successive random origins. Forward only advances into unvisited
// candidate rooms, so runs end naturally at walls and loops; forks push
// extra origins for later runs. A final repair pass reconnects the runs.
func spelunker[T any](maze *core.Maze[T], rng Randomizer, candidates *matrix.Matrix[bool], instructions Instructions) {
	if len(instructions) == 0 {
		ConnectAll(maze, rng, maskFilter(candidates))

		return
	}
	mask := maskFilter(candidates.Clone())

	// The stack of pending origins. Forked origins are deduplicated so a
	// program forking without moving cannot cycle forever.
	var origins []core.WallPos
	forked := map[core.WallPos]struct{}{}
	fork := func(wp core.WallPos) {
		if _, ok := forked[wp]; !ok {
			forked[wp] = struct{}{}
			origins = append(origins, wp)
		}
	}
	if pos, ok := randomRoom(rng, candidates); ok {
		if wp, ok := randomWall(rng, maze, pos, candidates); ok {
			origins = append(origins, wp)
		}
	}

	for {
		var wp core.WallPos
		if len(origins) > 0 {
			// Continue a previous fork.
			wp = origins[len(origins)-1]
			origins = origins[:len(origins)-1]
		} else if pos, ok := randomRoom(rng, candidates); ok {
			*candidates.At(pos) = false
			if wp, ok = randomWall(rng, maze, pos, candidates); !ok {
				// The room has no candidate walls.
				continue
			}
		} else {
			// All candidate rooms have been visited.
			break
		}

		// Execute the program; a run ends when forward is blocked or a full
		// cycle passes without moving.
		sinceForward := 0
	run:
		for i := 0; ; i = (i + 1) % len(instructions) {
			if sinceForward >= len(instructions) {
				break
			}
			sinceForward++

			switch Instruction(instructions[i]) {
			case Forward:
				sinceForward = 0
				*candidates.At(wp.Pos) = false

				back := maze.Back(wp)
				candidate, ok := candidates.Get(back.Pos)
				if !ok || !*candidate || maze.Room(back.Pos).Visited {
					break run
				}
				maze.Open(wp)
				opposite := maze.Opposite(back)
				if opposite == nil {
					// Triangular rooms have no opposite wall to continue
					// through.
					break run
				}
				wp = core.WallPos{Pos: back.Pos, Wall: opposite}
				*candidates.At(wp.Pos) = false
			case TurnLeft:
				wp.Wall = wp.Wall.Previous
			case TurnRight:
				wp.Wall = wp.Wall.Next
			case ForkLeft:
				fork(core.WallPos{Pos: wp.Pos, Wall: wp.Wall.Previous})
			case ForkRight:
				fork(core.WallPos{Pos: wp.Pos, Wall: wp.Wall.Next})
			}
		}
	}

	ConnectAll(maze, rng, mask)
}

// maskFilter adapts a candidate matrix to a Filter.
func maskFilter(candidates *matrix.Matrix[bool]) Filter {
	return func(pos matrix.Pos) bool {
		candidate, ok := candidates.Get(pos)

		return ok && *candidate
	}
}
