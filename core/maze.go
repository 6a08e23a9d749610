package core

import (
	"iter"

	"github.com/katalvlaran/lvlmaze/matrix"
)

// Maze is a rectangular grid of rooms of one shape. Every wall is tracked on
// both of its sides; SetOpen keeps the two sides in sync, so the state of a
// wall can be read from either adjacent room.
type Maze[T any] struct {
	shape Shape
	rooms *matrix.Matrix[Room[T]]
}

// New returns a width×height maze with all walls closed, all rooms
// unvisited and zero-valued payloads.
func New[T any](shape Shape, width, height int) *Maze[T] {
	return &Maze[T]{shape: shape, rooms: matrix.New[Room[T]](width, height)}
}

// NewWithData returns a maze with all walls closed and every room payload
// initialized by f, called in row-major order.
func NewWithData[T any](shape Shape, width, height int, f func(matrix.Pos) T) *Maze[T] {
	return &Maze[T]{
		shape: shape,
		rooms: matrix.NewWithData(width, height, func(pos matrix.Pos) Room[T] {
			return Room[T]{Data: f(pos)}
		}),
	}
}

// Shape returns the room shape of the maze.
func (m *Maze[T]) Shape() Shape { return m.shape }

// Width returns the number of room columns.
func (m *Maze[T]) Width() int { return m.rooms.Width() }

// Height returns the number of room rows.
func (m *Maze[T]) Height() int { return m.rooms.Height() }

// IsInside reports whether pos addresses a room of the maze.
func (m *Maze[T]) IsInside(pos matrix.Pos) bool {
	return m.rooms.IsInside(pos)
}

// Positions yields every room position in row-major order. The sequence is
// restartable.
func (m *Maze[T]) Positions() iter.Seq[matrix.Pos] {
	return m.rooms.Positions()
}

// Room returns the room at pos, or nil when pos lies outside the maze.
func (m *Maze[T]) Room(pos matrix.Pos) *Room[T] {
	room, ok := m.rooms.Get(pos)
	if !ok {
		return nil
	}

	return room
}

// Data returns the payload of the room at pos, or nil when pos lies outside
// the maze.
func (m *Maze[T]) Data(pos matrix.Pos) *T {
	room := m.Room(pos)
	if room == nil {
		return nil
	}

	return &room.Data
}

// Walls returns the walls of the room at pos, ordered by ordinal.
func (m *Maze[T]) Walls(pos matrix.Pos) []*Wall {
	return m.shape.Walls(pos)
}

// WallPositions yields the wall positions of the room at pos, ordered by
// ordinal.
func (m *Maze[T]) WallPositions(pos matrix.Pos) iter.Seq[WallPos] {
	return func(yield func(WallPos) bool) {
		for _, wall := range m.shape.Walls(pos) {
			if !yield(WallPos{Pos: pos, Wall: wall}) {
				return
			}
		}
	}
}

// AllWalls returns every wall of the maze's shape catalog, ordered by index.
func (m *Maze[T]) AllWalls() []*Wall {
	return m.shape.AllWalls()
}

// Back returns the other side of a wall, located in the neighbouring room.
// The returned position may lie outside the maze.
func (m *Maze[T]) Back(wp WallPos) WallPos {
	return m.shape.Back(wp)
}

// Opposite returns the wall on the opposite side of wp's room, or nil for
// shapes whose rooms have an odd number of walls.
func (m *Maze[T]) Opposite(wp WallPos) *Wall {
	return m.shape.Opposite(wp)
}

// IsOpen reports whether the wall is open. Walls of positions outside the
// maze are closed.
func (m *Maze[T]) IsOpen(wp WallPos) bool {
	room := m.Room(wp.Pos)

	return room != nil && room.IsOpen(wp.Wall)
}

// SetOpen opens or closes a wall on both of its sides. Sides lying outside
// the maze are skipped, so opening a border wall records only the inner
// half.
func (m *Maze[T]) SetOpen(wp WallPos, open bool) {
	if room := m.Room(wp.Pos); room != nil {
		room.SetOpen(wp.Wall, open)
	}
	back := m.shape.Back(wp)
	if room := m.Room(back.Pos); room != nil {
		room.SetOpen(back.Wall, open)
	}
}

// Open opens a wall on both of its sides, marking the adjacent rooms
// visited.
func (m *Maze[T]) Open(wp WallPos) {
	m.SetOpen(wp, true)
}

// Close closes a wall on both of its sides.
func (m *Maze[T]) Close(wp WallPos) {
	m.SetOpen(wp, false)
}

// ConnectingWall returns the wall of the room at a that leads to b.
func (m *Maze[T]) ConnectingWall(a, b matrix.Pos) (WallPos, bool) {
	for _, wall := range m.shape.Walls(a) {
		if a.Add(wall.Dir) == b {
			return WallPos{Pos: a, Wall: wall}, true
		}
	}

	return WallPos{}, false
}

// Connected reports whether a and b are the same room or share an open
// wall.
func (m *Maze[T]) Connected(a, b matrix.Pos) bool {
	if a == b {
		return true
	}
	wp, ok := m.ConnectingWall(a, b)

	return ok && m.IsOpen(wp)
}

// Doors yields the open walls of the room at pos.
func (m *Maze[T]) Doors(pos matrix.Pos) iter.Seq[*Wall] {
	return func(yield func(*Wall) bool) {
		room := m.Room(pos)
		if room == nil {
			return
		}
		for _, wall := range m.shape.Walls(pos) {
			if room.IsOpen(wall) && !yield(wall) {
				return
			}
		}
	}
}

// Neighbors yields the rooms reachable from pos through open walls.
func (m *Maze[T]) Neighbors(pos matrix.Pos) iter.Seq[matrix.Pos] {
	return func(yield func(matrix.Pos) bool) {
		for wall := range m.Doors(pos) {
			next := pos.Add(wall.Dir)
			if m.IsInside(next) && !yield(next) {
				return
			}
		}
	}
}

// Adjacent yields the positions on the other side of every wall of the room
// at pos, including positions outside the maze.
func (m *Maze[T]) Adjacent(pos matrix.Pos) iter.Seq[matrix.Pos] {
	return func(yield func(matrix.Pos) bool) {
		for _, wall := range m.shape.Walls(pos) {
			if !yield(pos.Add(wall.Dir)) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the maze.
func (m *Maze[T]) Clone() *Maze[T] {
	return &Maze[T]{shape: m.shape, rooms: m.rooms.Clone()}
}
