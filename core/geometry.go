package core

import (
	"math"

	"github.com/katalvlaran/lvlmaze/matrix"
	"github.com/katalvlaran/lvlmaze/physical"
)

// Corners returns the physical endpoints of the wall at wp, in span order:
// first the corner at the start of the span, then the corner at its end.
func (s Shape) Corners(wp WallPos) (physical.Pos, physical.Pos) {
	center := s.Center(wp.Pos)

	return physical.Pos{
			X: center.X + wp.Wall.Span.Start.Dx,
			Y: center.Y + wp.Wall.Span.Start.Dy,
		}, physical.Pos{
			X: center.X + wp.Wall.Span.End.Dx,
			Y: center.Y + wp.Wall.Span.End.Dy,
		}
}

// CornerWalls returns the walls sharing the start corner of wp's span,
// counter-clockwise, beginning with wp itself. The returned positions may
// lie outside the maze.
func (s Shape) CornerWalls(wp WallPos) []WallPos {
	offsets := wp.Wall.CornerWallOffsets
	walls := make([]WallPos, 0, len(offsets)+1)
	walls = append(walls, wp)
	for _, offset := range offsets {
		walls = append(walls, WallPos{
			Pos:  matrix.Pos{Col: wp.Pos.Col + offset.Dx, Row: wp.Pos.Row + offset.Dy},
			Wall: offset.Wall,
		})
	}

	return walls
}

// WallPosAt returns the wall whose span contains the angle from the room
// centre to the physical position. Positions on the room centre itself
// resolve to the wall containing the zero angle.
func (s Shape) WallPosAt(pos physical.Pos) WallPos {
	room := s.RoomAt(pos)
	center := s.Center(room)
	angle := math.Atan2(pos.Y-center.Y, pos.X-center.X)

	walls := s.Walls(room)
	for _, wall := range walls {
		if wall.InSpan(angle) {
			return WallPos{Pos: room, Wall: wall}
		}
	}

	return WallPos{Pos: room, Wall: walls[0]}
}

// RoomsTouchedBy returns the positions of the rooms whose centre or wall
// corners lie inside the viewbox. Rooms are collected by ring expansion
// around the room at the viewbox centre, so the result may include
// positions outside a concrete maze; it may also miss rooms that only
// marginally intersect the viewbox.
func (s Shape) RoomsTouchedBy(viewbox physical.ViewBox) []matrix.Pos {
	start := s.RoomAt(viewbox.Center())

	var rooms []matrix.Pos
	for distance := 0; ; distance++ {
		found := false
		for pos := range Surround(start, distance) {
			if s.touches(pos, viewbox) {
				rooms = append(rooms, pos)
				found = true
			}
		}
		if !found {
			return rooms
		}
	}
}

func (s Shape) touches(pos matrix.Pos, viewbox physical.ViewBox) bool {
	center := s.Center(pos)
	if viewbox.Contains(center) {
		return true
	}
	for _, wall := range s.Walls(pos) {
		corner := physical.Pos{
			X: center.X + wall.Span.Start.Dx,
			Y: center.Y + wall.Span.Start.Dy,
		}
		if viewbox.Contains(corner) {
			return true
		}
	}

	return false
}

// Center returns the physical centre of the room at pos.
func (m *Maze[T]) Center(pos matrix.Pos) physical.Pos {
	return m.shape.Center(pos)
}

// RoomAt returns the position of the room whose centre is closest to the
// physical position. The result may lie outside the maze.
func (m *Maze[T]) RoomAt(pos physical.Pos) matrix.Pos {
	return m.shape.RoomAt(pos)
}

// Corners returns the physical endpoints of the wall at wp, in span order.
func (m *Maze[T]) Corners(wp WallPos) (physical.Pos, physical.Pos) {
	return m.shape.Corners(wp)
}

// CornerWalls returns the walls sharing the start corner of wp's span,
// counter-clockwise, beginning with wp itself.
func (m *Maze[T]) CornerWalls(wp WallPos) []WallPos {
	return m.shape.CornerWalls(wp)
}

// WallPosAt returns the wall whose span contains the angle from the room
// centre to the physical position.
func (m *Maze[T]) WallPosAt(pos physical.Pos) WallPos {
	return m.shape.WallPosAt(pos)
}

// Viewbox returns the minimal rectangle containing every wall corner of the
// maze.
func (m *Maze[T]) Viewbox() physical.ViewBox {
	return m.shape.Viewbox(m.Width(), m.Height())
}

// RoomsTouchedBy returns the positions of the rooms whose centre or wall
// corners lie inside the viewbox. The result may include positions outside
// the maze.
func (m *Maze[T]) RoomsTouchedBy(viewbox physical.ViewBox) []matrix.Pos {
	return m.shape.RoomsTouchedBy(viewbox)
}
