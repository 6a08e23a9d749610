// Package core provides the maze model: room shapes, wall catalogs, rooms
// with typed payloads and the Maze aggregate tying them together, plus the
// geometry mapping rooms onto the continuous plane.
//
// The core package provides:
//
//   - Shape, the room geometry of a maze: Tri, Quad or Hex. The numeric
//     value of a shape is its wall count per room.
//   - Wall, one side of a room. Walls live in per-shape catalogs and every
//     room of a shape references the same Wall values, so pointer
//     comparison is the identity test. A wall knows its direction (the
//     matrix displacement to the neighbouring room), its angular span as
//     seen from the room centre, its Previous/Next walls along the room
//     boundary and the offsets of the walls meeting its start corner.
//   - Room[T], a single cell: an open-wall bit mask, a visited flag and a
//     user payload.
//   - Maze[T], a width×height grid of rooms of one shape. A wall is stored
//     on both of its sides and SetOpen keeps the sides in sync, so the
//     state of a wall can be read from either adjacent room.
//   - The plane geometry: Center and RoomAt convert between room positions
//     and physical positions, Corners and CornerWalls resolve the corner
//     layout around a wall, WallPosAt finds the wall subtending a physical
//     position, Viewbox computes the bounding rectangle of a maze and
//     RoomsTouchedBy collects the rooms a rectangle overlaps.
//
// # Wall geometry
//
// Every wall subtends an angular span as seen from the centre of its room.
// The plane follows raster orientation, y growing downwards, so spans run
// clockwise on screen. The spans of a room's walls partition [0, 2π)
// exactly: every angle falls inside precisely one wall of the room, each
// wall starts where its Previous ends, and InSpan treats spans as
// half-open (start included, end excluded). Wall corners are the physical
// points at the span boundaries; CornerWallOffsets enumerate the walls of
// neighbouring rooms sharing the start corner, counter-clockwise, which is
// what wall-following navigation traverses.
//
// Tri and Hex grids are not translation-invariant: triangular rooms
// alternate between upward and downward orientation with (col+row) parity,
// and hexagonal rows are offset by half a room with row parity. The
// catalogs carry separate wall sets per orientation; Walls(pos) selects
// the right one, and the Back of a wall maps between them.
//
// # Maze state
//
// All walls of a new maze are closed. SetOpen is the only mutator: it
// opens or closes a wall on the room itself and on the neighbouring room,
// skipping sides outside the maze, so border walls can be opened to mark
// entrances. Opening a wall marks the adjacent rooms visited; closing
// never clears the flag. Mazes are deep-cloneable for snapshotting before
// speculative mutation, and concurrent readers are safe as long as no
// SetOpen runs.
//
// Complexity:
//
//   - Wall and room state queries, Center, RoomAt, WallPosAt: O(1) for a
//     fixed shape.
//   - Viewbox: O(rows) — only boundary columns contribute extrema.
//   - RoomsTouchedBy: O(r²) where r is the ring distance at which the
//     viewbox is exhausted.
//
// Serialization:
//
//	Mazes encode to JSON as {"shape","rooms"} with rooms in row-major
//	order, rooms as {"walls","visited","data"}, shapes and walls by name.
//	Decoding resolves wall names through the shape catalogs.
//
// Errors:
//
//   - ErrUnknownShape if a shape name, value or wall count is not Tri,
//     Quad or Hex.
//   - ErrUnknownWall if a wall name does not exist in any shape catalog.
package core
