package core

import (
	"math"

	"github.com/katalvlaran/lvlmaze/matrix"
	"github.com/katalvlaran/lvlmaze/physical"
)

// triD is the span step angle for triangular rooms.
const triD = math.Pi / 6

// Centre spacing for triangular rooms. Columns are cos(30°) apart; rows are
// one and a half units apart with centres nudged by triOffset depending on
// the triangle orientation.
const (
	triHorizontalMultiplicator = 0.8660254037844386
	triVerticalMultiplicator   = 1.5
	triOffset                  = 0.25
)

// The triangular room walls. Declaration order fixes the wall indices; the
// 0 suffix marks walls of upright rooms, the 1 suffix walls of reversed
// rooms.
var (
	TriLeft0 = &Wall{
		Name: "Tri:LEFT0", Shape: Tri, Index: 0, Ordinal: 0,
		Dir:  matrix.Pos{Col: -1, Row: 0},
		Span: newSpan(3*triD, 7*triD),
	}
	TriRight1 = &Wall{
		Name: "Tri:RIGHT1", Shape: Tri, Index: 1, Ordinal: 2,
		Dir:  matrix.Pos{Col: 1, Row: 0},
		Span: newSpan(9*triD, 13*triD),
	}
	TriLeft1 = &Wall{
		Name: "Tri:LEFT1", Shape: Tri, Index: 2, Ordinal: 0,
		Dir:  matrix.Pos{Col: -1, Row: 0},
		Span: newSpan(5*triD, 9*triD),
	}
	TriRight0 = &Wall{
		Name: "Tri:RIGHT0", Shape: Tri, Index: 3, Ordinal: 1,
		Dir:  matrix.Pos{Col: 1, Row: 0},
		Span: newSpan(11*triD, 15*triD),
	}
	TriUp = &Wall{
		Name: "Tri:UP", Shape: Tri, Index: 4, Ordinal: 2,
		Dir:  matrix.Pos{Col: 0, Row: -1},
		Span: newSpan(7*triD, 11*triD),
	}
	TriDown = &Wall{
		Name: "Tri:DOWN", Shape: Tri, Index: 5, Ordinal: 1,
		Dir:  matrix.Pos{Col: 0, Row: 1},
		Span: newSpan(1*triD, 5*triD),
	}
)

// triAll is ordered by index; triRoom0 and triRoom1 hold the walls of
// upright and reversed rooms ordered by ordinal.
var (
	triAll   = []*Wall{TriLeft0, TriRight1, TriLeft1, TriRight0, TriUp, TriDown}
	triRoom0 = []*Wall{TriLeft0, TriRight0, TriUp}
	triRoom1 = []*Wall{TriLeft1, TriDown, TriRight1}
)

func init() {
	TriLeft0.Previous, TriLeft0.Next = TriRight0, TriUp
	TriUp.Previous, TriUp.Next = TriLeft0, TriRight0
	TriRight0.Previous, TriRight0.Next = TriUp, TriLeft0
	TriDown.Previous, TriDown.Next = TriRight1, TriLeft1
	TriLeft1.Previous, TriLeft1.Next = TriDown, TriRight1
	TriRight1.Previous, TriRight1.Next = TriLeft1, TriDown

	TriLeft0.CornerWallOffsets = []Offset{
		{Dx: -1, Dy: 0, Wall: TriDown},
		{Dx: -1, Dy: 1, Wall: TriRight0},
		{Dx: 0, Dy: 1, Wall: TriRight1},
		{Dx: 1, Dy: 1, Wall: TriUp},
		{Dx: 1, Dy: 0, Wall: TriLeft1},
	}
	TriRight1.CornerWallOffsets = []Offset{
		{Dx: 1, Dy: 0, Wall: TriUp},
		{Dx: 1, Dy: -1, Wall: TriLeft1},
		{Dx: 0, Dy: -1, Wall: TriLeft0},
		{Dx: -1, Dy: -1, Wall: TriDown},
		{Dx: -1, Dy: 0, Wall: TriRight0},
	}
	TriLeft1.CornerWallOffsets = []Offset{
		{Dx: -1, Dy: 0, Wall: TriLeft0},
		{Dx: -2, Dy: 0, Wall: TriDown},
		{Dx: -2, Dy: 1, Wall: TriRight0},
		{Dx: -1, Dy: 1, Wall: TriRight1},
		{Dx: 0, Dy: 1, Wall: TriUp},
	}
	TriRight0.CornerWallOffsets = []Offset{
		{Dx: 1, Dy: 0, Wall: TriRight1},
		{Dx: 2, Dy: 0, Wall: TriUp},
		{Dx: 2, Dy: -1, Wall: TriLeft1},
		{Dx: 1, Dy: -1, Wall: TriLeft0},
		{Dx: 0, Dy: -1, Wall: TriDown},
	}
	TriUp.CornerWallOffsets = []Offset{
		{Dx: 0, Dy: -1, Wall: TriLeft1},
		{Dx: -1, Dy: -1, Wall: TriLeft0},
		{Dx: -2, Dy: -1, Wall: TriDown},
		{Dx: -2, Dy: 0, Wall: TriRight0},
		{Dx: -1, Dy: 0, Wall: TriRight1},
	}
	TriDown.CornerWallOffsets = []Offset{
		{Dx: 0, Dy: 1, Wall: TriRight0},
		{Dx: 1, Dy: 1, Wall: TriRight1},
		{Dx: 2, Dy: 1, Wall: TriUp},
		{Dx: 2, Dy: 0, Wall: TriLeft1},
		{Dx: 1, Dy: 0, Wall: TriLeft0},
	}
}

// triReversed reports whether the room at pos points downwards.
func triReversed(pos matrix.Pos) bool {
	return (pos.Col+pos.Row)&1 != 0
}

type triOps struct{}

func (triOps) allWalls() []*Wall {
	return triAll
}

func (triOps) walls(pos matrix.Pos) []*Wall {
	if triReversed(pos) {
		return triRoom1
	}

	return triRoom0
}

func (triOps) backIndex(index int) int {
	return index ^ 0b0001
}

func (triOps) opposite(int) *Wall {
	// A room with an odd number of walls has no opposite wall.
	return nil
}

func (triOps) center(pos matrix.Pos) physical.Pos {
	offset := -triOffset
	if triReversed(pos) {
		offset = triOffset
	}

	return physical.Pos{
		X: (float64(pos.Col) + 0.5) * triHorizontalMultiplicator,
		Y: (float64(pos.Row)+0.5)*triVerticalMultiplicator + offset,
	}
}

func (triOps) roomAt(pos physical.Pos) matrix.Pos {
	approxRow := math.Floor(pos.Y / triVerticalMultiplicator)
	approxCol := math.Floor(pos.X / triHorizontalMultiplicator)
	row := int(approxRow)
	col := int(approxCol)
	rowOdd := row&1 == 1

	// Positions relative to the approximated room.
	relY := pos.Y - approxRow*triVerticalMultiplicator
	relX := pos.X - approxCol*triHorizontalMultiplicator

	if rowOdd {
		if relX < 0.5 && relY > relX {
			col--
		} else if relX > 0.5 && relY > relX {
			col++
		}
	} else {
		if relX < 0.5 && relY < relX {
			col--
		} else if relX > 0.5 && relY < relX {
			col++
		}
	}

	return matrix.Pos{Col: col, Row: row}
}

func (triOps) minimalDimensions(width, height float64) (int, int) {
	cols := int(math.Ceil(
		math.Max(width-triHorizontalMultiplicator, triHorizontalMultiplicator) /
			triHorizontalMultiplicator))
	rows := int(math.Ceil(
		math.Max(height, triVerticalMultiplicator) / triVerticalMultiplicator))

	return cols, rows
}
