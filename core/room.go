package core

import "math/bits"

// Room is a single maze cell: the set of open walls, a visited flag and a
// piece of user data. The zero value is a closed, unvisited room.
//
// Visited is set when a wall is opened and is never cleared by closing;
// it records that the room has been touched by a generator.
type Room[T any] struct {
	walls Mask

	// Visited reports whether any wall of the room has ever been opened.
	Visited bool

	// Data is the user payload carried by the room.
	Data T
}

// IsOpen reports whether the wall is open.
func (r *Room[T]) IsOpen(wall *Wall) bool {
	return r.walls&wall.Mask() != 0
}

// SetOpen opens or closes the wall. Opening marks the room as visited.
func (r *Room[T]) SetOpen(wall *Wall, value bool) {
	if value {
		r.walls |= wall.Mask()
		r.Visited = true
	} else {
		r.walls &^= wall.Mask()
	}
}

// Open opens the wall.
func (r *Room[T]) Open(wall *Wall) {
	r.SetOpen(wall, true)
}

// Close closes the wall.
func (r *Room[T]) Close(wall *Wall) {
	r.SetOpen(wall, false)
}

// OpenWalls returns the number of open walls.
func (r *Room[T]) OpenWalls() int {
	return bits.OnesCount32(uint32(r.walls))
}

// WithData returns a copy of the room carrying new data, preserving the wall
// set and visited flag.
func WithData[T, U any](r Room[T], data U) Room[U] {
	return Room[U]{walls: r.walls, Visited: r.Visited, Data: data}
}
