package initialize_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/initialize"
	"github.com/katalvlaran/lvlmaze/matrix"
)

var shapes = []core.Shape{core.Tri, core.Quad, core.Hex}

// connectingMethods generate mazes where every candidate room is reachable
// from every other. Dividing is absent: recursive division cuts without
// doors, so its pieces stay separated.
var connectingMethods = []initialize.Method{
	initialize.Branching,
	initialize.Winding,
	initialize.Clear,
	initialize.Braid,
	initialize.Spelunker("|"),
	initialize.Spelunker("||>"),
	initialize.Spelunker("{||}>|"),
	initialize.Spelunker(""),
}

// reachable flood-fills from start through open walls and returns the
// visited set.
func reachable[T any](maze *core.Maze[T], start matrix.Pos) map[matrix.Pos]bool {
	seen := map[matrix.Pos]bool{start: true}
	stack := []matrix.Pos{start}
	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range maze.Neighbors(pos) {
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}

	return seen
}

// TestInitialize_Connectivity verifies that every generating method yields
// one fully connected, fully visited maze for every shape.
func TestInitialize_Connectivity(t *testing.T) {
	for _, shape := range shapes {
		for _, method := range connectingMethods {
			t.Run(fmt.Sprintf("%v/%v", shape, method), func(t *testing.T) {
				maze := core.New[struct{}](shape, 12, 9)
				initialize.Initialize(maze, method, initialize.NewLFSR(42))

				seen := reachable(maze, matrix.Pos{Col: 0, Row: 0})
				for pos := range maze.Positions() {
					require.True(t, seen[pos], "unreachable room %v", pos)
					require.True(t, maze.Room(pos).Visited, "unvisited room %v", pos)
				}
			})
		}
	}
}

// TestInitialize_Deterministic verifies that equal seeds reproduce the wall
// state exactly.
func TestInitialize_Deterministic(t *testing.T) {
	methods := append(connectingMethods, initialize.Dividing)
	for _, method := range methods {
		a := core.New[struct{}](core.Hex, 10, 10)
		b := core.New[struct{}](core.Hex, 10, 10)

		initialize.Initialize(a, method, initialize.NewLFSR(1234))
		initialize.Initialize(b, method, initialize.NewLFSR(1234))

		for pos := range a.Positions() {
			for _, wall := range a.Walls(pos) {
				wp := core.WallPos{Pos: pos, Wall: wall}
				require.Equal(t, a.IsOpen(wp), b.IsOpen(wp), "%v: wall %v at %v", method, wall, pos)
			}
		}
	}
}

// TestInitializeFilter_Fidelity verifies that exactly the filtered rooms
// are touched: candidates end up visited, the rest stay fully closed.
func TestInitializeFilter_Fidelity(t *testing.T) {
	filter := func(pos matrix.Pos) bool { return pos.Col < 4 }
	methods := []initialize.Method{initialize.Branching, initialize.Winding, initialize.Braid}

	for _, shape := range shapes {
		for _, method := range methods {
			t.Run(fmt.Sprintf("%v/%v", shape, method), func(t *testing.T) {
				maze := core.New[struct{}](shape, 8, 8)
				initialize.InitializeFilter(maze, method, initialize.NewLFSR(7), filter)

				for pos := range maze.Positions() {
					room := maze.Room(pos)
					if filter(pos) {
						assert.True(t, room.Visited, "candidate %v untouched", pos)
					} else {
						assert.False(t, room.Visited, "excluded %v touched", pos)
						assert.Zero(t, room.OpenWalls(), "excluded %v has open walls", pos)
					}
				}
			})
		}
	}
}

// TestInitializeFilter_KeepsRegionsApart verifies that a filter split into
// two disconnected regions yields two separated sub-mazes.
func TestInitializeFilter_KeepsRegionsApart(t *testing.T) {
	// Exclude the middle column; the two halves never connect.
	filter := func(pos matrix.Pos) bool { return pos.Col != 4 }
	maze := core.New[struct{}](core.Quad, 9, 5)
	initialize.InitializeFilter(maze, initialize.Branching, initialize.NewLFSR(3), filter)

	left := reachable(maze, matrix.Pos{Col: 0, Row: 0})
	for pos := range maze.Positions() {
		switch {
		case pos.Col < 4:
			assert.True(t, left[pos], "left room %v unreachable", pos)
		case pos.Col == 4:
			assert.Zero(t, maze.Room(pos).OpenWalls(), "excluded room %v opened", pos)
		default:
			assert.False(t, left[pos], "right room %v reachable across the gap", pos)
			assert.True(t, maze.Room(pos).Visited, "right room %v untouched", pos)
		}
	}
}

// TestInitializeFilter_Empty verifies that a filter matching nothing leaves
// the maze unchanged.
func TestInitializeFilter_Empty(t *testing.T) {
	maze := core.New[struct{}](core.Quad, 5, 5)
	initialize.InitializeFilter(maze, initialize.Winding, initialize.NewLFSR(1),
		func(matrix.Pos) bool { return false })

	for pos := range maze.Positions() {
		assert.Zero(t, maze.Room(pos).OpenWalls(), "at %v", pos)
		assert.False(t, maze.Room(pos).Visited, "at %v", pos)
	}
}

// TestClear_OpensExactlyInnerWalls verifies that clearing opens every wall
// between two rooms and nothing toward the outside.
func TestClear_OpensExactlyInnerWalls(t *testing.T) {
	for _, shape := range shapes {
		maze := core.New[struct{}](shape, 4, 4)
		initialize.Initialize(maze, initialize.Clear, initialize.NewLFSR(1))

		for pos := range maze.Positions() {
			for _, wall := range maze.Walls(pos) {
				wp := core.WallPos{Pos: pos, Wall: wall}
				inner := maze.IsInside(maze.Back(wp).Pos)
				assert.Equal(t, inner, maze.IsOpen(wp), "%v: wall %v at %v", shape, wall, pos)
			}
		}
	}
}

// TestBraid_NoDeadEnds verifies that braided square mazes keep every room
// at two or more open walls.
func TestBraid_NoDeadEnds(t *testing.T) {
	maze := core.New[struct{}](core.Quad, 10, 10)
	initialize.Initialize(maze, initialize.Braid, initialize.NewLFSR(21))

	for pos := range maze.Positions() {
		assert.GreaterOrEqual(t, maze.Room(pos).OpenWalls(), 2, "dead end at %v", pos)
	}
}

// TestBranching_SpanningForest verifies that branching carves a tree: rooms
// minus one equals the number of open inner walls.
func TestBranching_SpanningForest(t *testing.T) {
	maze := core.New[struct{}](core.Quad, 9, 7)
	initialize.Initialize(maze, initialize.Branching, initialize.NewLFSR(5))

	open := 0
	for pos := range maze.Positions() {
		open += maze.Room(pos).OpenWalls()
	}
	// Every inner wall is recorded on both sides.
	assert.Equal(t, 9*7-1, open/2, "open wall count")
}

// TestDividing_SymmetricAndVisited verifies the invariants dividing does
// guarantee: every room visited and wall state symmetric.
func TestDividing_SymmetricAndVisited(t *testing.T) {
	for _, shape := range shapes {
		maze := core.New[struct{}](shape, 10, 10)
		initialize.Initialize(maze, initialize.Dividing, initialize.NewLFSR(9))

		for pos := range maze.Positions() {
			assert.True(t, maze.Room(pos).Visited, "%v at %v", shape, pos)
			for _, wall := range maze.Walls(pos) {
				wp := core.WallPos{Pos: pos, Wall: wall}
				back := maze.Back(wp)
				if maze.IsInside(back.Pos) {
					assert.Equal(t, maze.IsOpen(wp), maze.IsOpen(back), "%v at %v", shape, wp)
				}
			}
		}
	}
}

// TestConnectAll joins manually carved areas and isolated rooms into one.
func TestConnectAll(t *testing.T) {
	maze := core.New[struct{}](core.Quad, 6, 1)
	maze.Open(core.WallPos{Pos: matrix.Pos{Col: 0, Row: 0}, Wall: core.QuadRight})
	maze.Open(core.WallPos{Pos: matrix.Pos{Col: 3, Row: 0}, Wall: core.QuadRight})

	initialize.ConnectAll(maze, initialize.NewLFSR(11), func(matrix.Pos) bool { return true })

	seen := reachable(maze, matrix.Pos{Col: 0, Row: 0})
	assert.Len(t, seen, 6, "all rooms joined")
}
