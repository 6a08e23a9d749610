package core

import (
	"iter"

	"github.com/katalvlaran/lvlmaze/matrix"
	"github.com/katalvlaran/lvlmaze/physical"
)

// shapeOps is the per-shape catalog and geometry behind Shape dispatch.
type shapeOps interface {
	allWalls() []*Wall
	walls(pos matrix.Pos) []*Wall
	backIndex(index int) int
	opposite(index int) *Wall
	center(pos matrix.Pos) physical.Pos
	roomAt(pos physical.Pos) matrix.Pos
	minimalDimensions(width, height float64) (int, int)
}

func (s Shape) ops() shapeOps {
	switch s {
	case Tri:
		return triOps{}
	case Quad:
		return quadOps{}
	case Hex:
		return hexOps{}
	default:
		panic("core: unknown shape")
	}
}

// AllWalls returns every wall of the shape catalog, ordered by index.
func (s Shape) AllWalls() []*Wall {
	return s.ops().allWalls()
}

// Walls returns the walls of the room at pos, ordered by ordinal.
func (s Shape) Walls(pos matrix.Pos) []*Wall {
	return s.ops().walls(pos)
}

// Back returns the other side of a wall, located in the neighbouring room.
func (s Shape) Back(wp WallPos) WallPos {
	ops := s.ops()

	return WallPos{
		Pos:  wp.Pos.Add(wp.Wall.Dir),
		Wall: ops.allWalls()[ops.backIndex(wp.Wall.Index)],
	}
}

// Opposite returns the wall on the opposite side of the room, or nil for
// shapes whose rooms have an odd number of walls.
func (s Shape) Opposite(wp WallPos) *Wall {
	return s.ops().opposite(wp.Wall.Index)
}

// Center returns the physical centre of the room at pos.
func (s Shape) Center(pos matrix.Pos) physical.Pos {
	return s.ops().center(pos)
}

// RoomAt returns the position of the room whose centre is closest to the
// physical position.
func (s Shape) RoomAt(pos physical.Pos) matrix.Pos {
	return s.ops().roomAt(pos)
}

// MinimalDimensions returns the smallest matrix dimensions for which the
// distance between the outermost corners covers width and height.
func (s Shape) MinimalDimensions(width, height float64) (cols, rows int) {
	return s.ops().minimalDimensions(width, height)
}

// Viewbox returns the minimal rectangle containing every wall corner of a
// maze with the given matrix dimensions.
func (s Shape) Viewbox(cols, rows int) physical.ViewBox {
	return physical.Bounds(func(yield func(physical.Pos) bool) {
		for row := 0; row < rows; row++ {
			for _, col := range [2]int{0, cols - 1} {
				pos := matrix.Pos{Col: col, Row: row}
				center := s.Center(pos)
				for _, wall := range s.Walls(pos) {
					corner := physical.Pos{
						X: center.X + wall.Span.Start.Dx,
						Y: center.Y + wall.Span.Start.Dy,
					}
					if !yield(corner) {
						return
					}
				}
			}
		}
	})
}

// Surround yields the positions at exactly the given horizontal or vertical
// distance from pos. Positions are visited clockwise, starting with the row
// where the row values are the smallest.
func Surround(pos matrix.Pos, distance int) iter.Seq[matrix.Pos] {
	return func(yield func(matrix.Pos) bool) {
		for col := pos.Col - distance; col <= pos.Col+distance; col++ {
			if !yield(matrix.Pos{Col: col, Row: pos.Row - distance}) {
				return
			}
		}
		for row := pos.Row - distance + 1; row < pos.Row+distance; row++ {
			if !yield(matrix.Pos{Col: pos.Col + distance, Row: row}) {
				return
			}
		}
		if distance != 0 {
			for col := pos.Col + distance; col >= pos.Col-distance; col-- {
				if !yield(matrix.Pos{Col: col, Row: pos.Row + distance}) {
					return
				}
			}
		}
		for row := pos.Row + distance - 1; row > pos.Row-distance; row-- {
			if !yield(matrix.Pos{Col: pos.Col - distance, Row: row}) {
				return
			}
		}
	}
}
