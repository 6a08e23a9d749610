package walk

import (
	"iter"
	"math"

	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/matrix"
)

// node is the per-room search state.
type node struct {
	f        uint32
	g        uint32
	visited  bool
	cameFrom matrix.Pos
	hasFrom  bool
}

// Walk finds the shortest path from one room to another through open
// walls. It returns nil when the rooms are not connected; walking from a
// room to itself yields a single-room path.
//
// Both positions must address rooms of the maze.
func Walk[T any](maze *core.Maze[T], from, to matrix.Pos) *Path[T] {
	// Search backwards so the backtrace reads forwards from the caller's
	// starting room.
	start, end := to, from

	h := func(pos matrix.Pos) uint32 {
		dc := pos.Col - end.Col
		if dc < 0 {
			dc = -dc
		}
		dr := pos.Row - end.Row
		if dr < 0 {
			dr = -dr
		}

		return uint32(dc + dr)
	}

	open := newOpenSet(maze.Width(), maze.Height())
	open.Push(0, start)

	rooms := matrix.NewWithData(maze.Width(), maze.Height(), func(matrix.Pos) node {
		return node{f: math.MaxUint32, g: math.MaxUint32}
	})
	rooms.At(start).g = 0
	rooms.At(start).f = h(start)

	for {
		current, ok := open.Pop()
		if !ok {
			return nil
		}
		if current == end {
			return &Path[T]{maze: maze, rooms: rooms, from: from, to: to}
		}

		rooms.At(current).visited = true
		for wall := range maze.Doors(current) {
			next := maze.Back(core.WallPos{Pos: current, Wall: wall}).Pos
			if !maze.IsInside(next) {
				continue
			}
			// Skip rooms already evaluated to an equal or better distance.
			g := rooms.At(current).g + 1
			if n := rooms.At(next); n.visited && n.g <= g {
				continue
			}

			// Keeping the frontier free of duplicates: a room is only
			// re-scored while its predecessor is absent from the open set.
			inOpen := open.Contains(current)
			if !inOpen || g < rooms.At(current).g {
				n := rooms.At(next)
				n.g = g
				n.f = g + h(next)
				n.cameFrom = current
				n.hasFrom = true
				if !inOpen {
					open.Push(n.f, next)
				}
			}
		}
	}
}

// Path is a walkable route between two rooms. It is a lazy view over the
// search backtrace: iterating does not mutate it, so a path can be walked
// any number of times.
type Path[T any] struct {
	maze  *core.Maze[T]
	rooms *matrix.Matrix[node]
	from  matrix.Pos
	to    matrix.Pos
}

// From returns the first room of the path.
func (p *Path[T]) From() matrix.Pos { return p.from }

// To returns the last room of the path.
func (p *Path[T]) To() matrix.Pos { return p.to }

// Positions yields the rooms of the path in order, from and to inclusive.
// The sequence is restartable.
func (p *Path[T]) Positions() iter.Seq[matrix.Pos] {
	return func(yield func(matrix.Pos) bool) {
		current := p.from
		if !yield(current) {
			return
		}
		for current != p.to {
			next := p.rooms.At(current)
			if !next.hasFrom {
				panic("walk: incomplete path backtrace")
			}
			current = next.cameFrom
			if !yield(current) {
				return
			}
		}
	}
}

// Slice collects the rooms of the path into a new slice.
func (p *Path[T]) Slice() []matrix.Pos {
	var out []matrix.Pos
	for pos := range p.Positions() {
		out = append(out, pos)
	}

	return out
}
