package core

import (
	"math"

	"github.com/katalvlaran/lvlmaze/matrix"
	"github.com/katalvlaran/lvlmaze/physical"
)

// quadD is the span step angle for square rooms.
const quadD = math.Pi / 4

// quadMultiplicator is the distance between the centres of neighbouring
// square rooms.
const quadMultiplicator = 2.0 / math.Sqrt2

// The square room walls. Declaration order fixes the wall indices.
var (
	QuadUp = &Wall{
		Name: "Quad:UP", Shape: Quad, Index: 0, Ordinal: 1,
		Dir:  matrix.Pos{Col: 0, Row: -1},
		Span: newSpan(5*quadD, 7*quadD),
	}
	QuadLeft = &Wall{
		Name: "Quad:LEFT", Shape: Quad, Index: 1, Ordinal: 0,
		Dir:  matrix.Pos{Col: -1, Row: 0},
		Span: newSpan(3*quadD, 5*quadD),
	}
	QuadDown = &Wall{
		Name: "Quad:DOWN", Shape: Quad, Index: 2, Ordinal: 3,
		Dir:  matrix.Pos{Col: 0, Row: 1},
		Span: newSpan(1*quadD, 3*quadD),
	}
	QuadRight = &Wall{
		Name: "Quad:RIGHT", Shape: Quad, Index: 3, Ordinal: 2,
		Dir:  matrix.Pos{Col: 1, Row: 0},
		Span: newSpan(7*quadD, 9*quadD),
	}
)

// quadAll is ordered by index, quadRoom by ordinal.
var (
	quadAll  = []*Wall{QuadUp, QuadLeft, QuadDown, QuadRight}
	quadRoom = []*Wall{QuadLeft, QuadUp, QuadRight, QuadDown}
)

func init() {
	QuadUp.Previous, QuadUp.Next = QuadLeft, QuadRight
	QuadLeft.Previous, QuadLeft.Next = QuadDown, QuadUp
	QuadDown.Previous, QuadDown.Next = QuadRight, QuadLeft
	QuadRight.Previous, QuadRight.Next = QuadUp, QuadDown

	QuadUp.CornerWallOffsets = []Offset{
		{Dx: 0, Dy: -1, Wall: QuadLeft},
		{Dx: -1, Dy: -1, Wall: QuadDown},
		{Dx: -1, Dy: 0, Wall: QuadRight},
	}
	QuadLeft.CornerWallOffsets = []Offset{
		{Dx: -1, Dy: 0, Wall: QuadDown},
		{Dx: -1, Dy: 1, Wall: QuadRight},
		{Dx: 0, Dy: 1, Wall: QuadUp},
	}
	QuadDown.CornerWallOffsets = []Offset{
		{Dx: 0, Dy: 1, Wall: QuadRight},
		{Dx: 1, Dy: 1, Wall: QuadUp},
		{Dx: 1, Dy: 0, Wall: QuadLeft},
	}
	QuadRight.CornerWallOffsets = []Offset{
		{Dx: 1, Dy: 0, Wall: QuadUp},
		{Dx: 1, Dy: -1, Wall: QuadLeft},
		{Dx: 0, Dy: -1, Wall: QuadDown},
	}
}

type quadOps struct{}

func (quadOps) allWalls() []*Wall {
	return quadAll
}

func (quadOps) walls(matrix.Pos) []*Wall {
	return quadRoom
}

func (quadOps) backIndex(index int) int {
	return index ^ 0b0010
}

func (quadOps) opposite(index int) *Wall {
	return quadAll[(index+len(quadAll)/2)%len(quadAll)]
}

func (quadOps) center(pos matrix.Pos) physical.Pos {
	return physical.Pos{
		X: (float64(pos.Col) + 0.5) * quadMultiplicator,
		Y: (float64(pos.Row) + 0.5) * quadMultiplicator,
	}
}

func (quadOps) roomAt(pos physical.Pos) matrix.Pos {
	return matrix.Pos{
		Col: int(math.Floor(pos.X / quadMultiplicator)),
		Row: int(math.Floor(pos.Y / quadMultiplicator)),
	}
}

func (quadOps) minimalDimensions(width, height float64) (int, int) {
	cols := int(math.Ceil(math.Max(width, quadMultiplicator) / quadMultiplicator))
	rows := int(math.Ceil(math.Max(height, quadMultiplicator) / quadMultiplicator))

	return cols, rows
}
