package initialize

import (
	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/matrix"
)

// Initialize opens walls in maze using the selected method. The maze should
// be fully closed; already open walls are kept.
//
// The result is reproducible when rng is: equal mazes and equally seeded
// deterministic randomizers yield identical wall state.
func Initialize[T any](maze *core.Maze[T], method Method, rng Randomizer) {
	InitializeFilter(maze, method, rng, func(matrix.Pos) bool { return true })
}

// InitializeFilter opens walls in maze using the selected method, restricted
// to the rooms accepted by filter. Rooms failing the filter are left fully
// closed; a filter matching no room leaves the maze unchanged.
func InitializeFilter[T any](maze *core.Maze[T], method Method, rng Randomizer, filter Filter) {
	count, candidates := matrix.Filter(maze.Width(), maze.Height(), filter)
	if count == 0 {
		return
	}

	switch method.kind {
	case kindBranching:
		branching(maze, rng, candidates)
	case kindWinding:
		winding(maze, rng, candidates)
	case kindClear:
		clear(maze, candidates)
	case kindBraid:
		braid(maze, rng, candidates)
	case kindDividing:
		dividing(maze, rng, candidates)
	case kindSpelunker:
		spelunker(maze, rng, candidates, method.instructions)
	}
}

// randomRoom returns a uniformly random position among the true cells of
// candidates.
func randomRoom(rng Randomizer, candidates *matrix.Matrix[bool]) (matrix.Pos, bool) {
	count := 0
	for pos := range candidates.Positions() {
		if *candidates.At(pos) {
			count++
		}
	}
	if count == 0 {
		return matrix.Pos{}, false
	}

	n := rng.Range(0, count)
	for pos := range candidates.Positions() {
		if *candidates.At(pos) {
			if n == 0 {
				return pos, true
			}
			n--
		}
	}

	return matrix.Pos{}, false
}

// randomWall returns a uniformly random wall of the room at pos among those
// whose neighbouring room is a true cell of candidates.
func randomWall[T any](rng Randomizer, maze *core.Maze[T], pos matrix.Pos, candidates *matrix.Matrix[bool]) (core.WallPos, bool) {
	var walls []core.WallPos
	for _, wall := range maze.Walls(pos) {
		wp := core.WallPos{Pos: pos, Wall: wall}
		if candidate, ok := candidates.Get(maze.Back(wp).Pos); ok && *candidate {
			walls = append(walls, wp)
		}
	}
	if len(walls) == 0 {
		return core.WallPos{}, false
	}

	return walls[rng.Range(0, len(walls))], true
}
