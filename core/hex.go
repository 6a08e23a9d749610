package core

import (
	"math"

	"github.com/katalvlaran/lvlmaze/matrix"
	"github.com/katalvlaran/lvlmaze/physical"
)

// hexD is the span step angle for hexagonal rooms.
const hexD = math.Pi / 6

// Centre spacing for hexagonal rooms, and the height of the top corner
// above the flat part of the hexagon.
const (
	hexHorizontalMultiplicator = 1.7320508075688772
	hexVerticalMultiplicator   = 1.5
	hexTopHeight               = 1.5
)

// The hexagonal room walls, arranged in back-to-back pairs. Declaration
// order fixes the wall indices; the 0 suffix marks walls of even rows, the
// 1 suffix walls of odd rows.
var (
	HexLeft0 = &Wall{
		Name: "Hex:LEFT0", Shape: Hex, Index: 0, Ordinal: 0,
		Dir:  matrix.Pos{Col: -1, Row: 0},
		Span: newSpan(5*hexD, 7*hexD),
	}
	HexRight0 = &Wall{
		Name: "Hex:RIGHT0", Shape: Hex, Index: 1, Ordinal: 3,
		Dir:  matrix.Pos{Col: 1, Row: 0},
		Span: newSpan(11*hexD, 13*hexD),
	}
	HexLeft1 = &Wall{
		Name: "Hex:LEFT1", Shape: Hex, Index: 2, Ordinal: 0,
		Dir:  matrix.Pos{Col: -1, Row: 0},
		Span: newSpan(5*hexD, 7*hexD),
	}
	HexRight1 = &Wall{
		Name: "Hex:RIGHT1", Shape: Hex, Index: 3, Ordinal: 3,
		Dir:  matrix.Pos{Col: 1, Row: 0},
		Span: newSpan(11*hexD, 13*hexD),
	}
	HexUpLeft0 = &Wall{
		Name: "Hex:UP_LEFT0", Shape: Hex, Index: 4, Ordinal: 1,
		Dir:  matrix.Pos{Col: 0, Row: -1},
		Span: newSpan(7*hexD, 9*hexD),
	}
	HexDownRight1 = &Wall{
		Name: "Hex:DOWN_RIGHT1", Shape: Hex, Index: 5, Ordinal: 4,
		Dir:  matrix.Pos{Col: 0, Row: 1},
		Span: newSpan(1*hexD, 3*hexD),
	}
	HexUpLeft1 = &Wall{
		Name: "Hex:UP_LEFT1", Shape: Hex, Index: 6, Ordinal: 1,
		Dir:  matrix.Pos{Col: -1, Row: -1},
		Span: newSpan(7*hexD, 9*hexD),
	}
	HexDownRight0 = &Wall{
		Name: "Hex:DOWN_RIGHT0", Shape: Hex, Index: 7, Ordinal: 4,
		Dir:  matrix.Pos{Col: 1, Row: 1},
		Span: newSpan(1*hexD, 3*hexD),
	}
	HexUpRight0 = &Wall{
		Name: "Hex:UP_RIGHT0", Shape: Hex, Index: 8, Ordinal: 2,
		Dir:  matrix.Pos{Col: 1, Row: -1},
		Span: newSpan(9*hexD, 11*hexD),
	}
	HexDownLeft1 = &Wall{
		Name: "Hex:DOWN_LEFT1", Shape: Hex, Index: 9, Ordinal: 5,
		Dir:  matrix.Pos{Col: -1, Row: 1},
		Span: newSpan(3*hexD, 5*hexD),
	}
	HexUpRight1 = &Wall{
		Name: "Hex:UP_RIGHT1", Shape: Hex, Index: 10, Ordinal: 2,
		Dir:  matrix.Pos{Col: 0, Row: -1},
		Span: newSpan(9*hexD, 11*hexD),
	}
	HexDownLeft0 = &Wall{
		Name: "Hex:DOWN_LEFT0", Shape: Hex, Index: 11, Ordinal: 5,
		Dir:  matrix.Pos{Col: 0, Row: 1},
		Span: newSpan(3*hexD, 5*hexD),
	}
)

// hexAll is ordered by index; hexRoom0 and hexRoom1 hold the walls of even
// and odd rows ordered by ordinal.
var (
	hexAll = []*Wall{
		HexLeft0, HexRight0, HexLeft1, HexRight1,
		HexUpLeft0, HexDownRight1, HexUpLeft1, HexDownRight0,
		HexUpRight0, HexDownLeft1, HexUpRight1, HexDownLeft0,
	}
	hexRoom0 = []*Wall{
		HexLeft0, HexUpLeft0, HexUpRight0, HexRight0, HexDownRight0, HexDownLeft0,
	}
	hexRoom1 = []*Wall{
		HexLeft1, HexUpLeft1, HexUpRight1, HexRight1, HexDownRight1, HexDownLeft1,
	}
)

func init() {
	for _, room := range [][]*Wall{hexRoom0, hexRoom1} {
		for i, wall := range room {
			wall.Previous = room[(i+len(room)-1)%len(room)]
			wall.Next = room[(i+1)%len(room)]
		}
	}

	HexLeft0.CornerWallOffsets = []Offset{
		{Dx: -1, Dy: 0, Wall: HexDownRight0},
		{Dx: 0, Dy: 1, Wall: HexUpRight1},
	}
	HexRight0.CornerWallOffsets = []Offset{
		{Dx: 1, Dy: 0, Wall: HexUpLeft0},
		{Dx: 1, Dy: -1, Wall: HexDownLeft1},
	}
	HexLeft1.CornerWallOffsets = []Offset{
		{Dx: -1, Dy: 0, Wall: HexDownRight1},
		{Dx: -1, Dy: 1, Wall: HexUpRight0},
	}
	HexRight1.CornerWallOffsets = []Offset{
		{Dx: 1, Dy: 0, Wall: HexUpLeft1},
		{Dx: 0, Dy: -1, Wall: HexDownLeft0},
	}
	HexUpLeft0.CornerWallOffsets = []Offset{
		{Dx: 0, Dy: -1, Wall: HexDownLeft1},
		{Dx: -1, Dy: 0, Wall: HexUpRight0},
	}
	HexDownRight1.CornerWallOffsets = []Offset{
		{Dx: 0, Dy: 1, Wall: HexUpRight0},
		{Dx: 1, Dy: 0, Wall: HexLeft1},
	}
	HexUpLeft1.CornerWallOffsets = []Offset{
		{Dx: -1, Dy: -1, Wall: HexDownLeft0},
		{Dx: -1, Dy: 0, Wall: HexRight1},
	}
	HexDownRight0.CornerWallOffsets = []Offset{
		{Dx: 1, Dy: 1, Wall: HexUpRight1},
		{Dx: 1, Dy: 0, Wall: HexLeft0},
	}
	HexUpRight0.CornerWallOffsets = []Offset{
		{Dx: 1, Dy: -1, Wall: HexLeft1},
		{Dx: 0, Dy: -1, Wall: HexDownRight1},
	}
	HexDownLeft1.CornerWallOffsets = []Offset{
		{Dx: -1, Dy: 1, Wall: HexRight0},
		{Dx: 0, Dy: 1, Wall: HexUpLeft0},
	}
	HexUpRight1.CornerWallOffsets = []Offset{
		{Dx: 0, Dy: -1, Wall: HexLeft0},
		{Dx: -1, Dy: -1, Wall: HexDownRight0},
	}
	HexDownLeft0.CornerWallOffsets = []Offset{
		{Dx: 0, Dy: 1, Wall: HexRight1},
		{Dx: 1, Dy: 1, Wall: HexUpLeft1},
	}
}

type hexOps struct{}

func (hexOps) allWalls() []*Wall {
	return hexAll
}

func (hexOps) walls(pos matrix.Pos) []*Wall {
	if pos.Row&1 == 1 {
		return hexRoom1
	}

	return hexRoom0
}

func (hexOps) backIndex(index int) int {
	return index ^ 0b0001
}

func (hexOps) opposite(index int) *Wall {
	// The left and right walls are back-to-back.
	if index&^0b0011 == 0 {
		return hexAll[index^0b0001]
	}

	return hexAll[index^0b0011]
}

func (hexOps) center(pos matrix.Pos) physical.Pos {
	shift := 1.0
	if pos.Row&1 == 1 {
		shift = 0.5
	}

	return physical.Pos{
		X: (float64(pos.Col) + shift) * hexHorizontalMultiplicator,
		Y: float64(pos.Row)*hexVerticalMultiplicator + 1.0,
	}
}

func (hexOps) roomAt(pos physical.Pos) matrix.Pos {
	// Approximations of the room position.
	approxRow, relY := matrix.Partition(pos.Y / hexVerticalMultiplicator)
	oddRow := approxRow&1 == 1
	shift := 0.5
	if oddRow {
		shift = 0.0
	}
	approxCol, relX := matrix.Partition(pos.X/hexHorizontalMultiplicator - shift)

	pastCenterX := relX > 0.5
	d := 0.5 - relX
	if pastCenterX {
		d = relX - 0.5
	}
	corner := d/hexTopHeight > relY
	pastCenterY := relY > 0.5

	col := approxCol
	if corner && oddRow && !pastCenterX {
		col--
	} else if corner && !oddRow && pastCenterX {
		col++
	}
	row := approxRow
	if corner && !pastCenterY {
		row--
	} else if corner && pastCenterY {
		row++
	}

	return matrix.Pos{Col: col, Row: row}
}

func (hexOps) minimalDimensions(width, height float64) (int, int) {
	rows := int(math.Ceil(
		math.Max(height, hexVerticalMultiplicator) / hexVerticalMultiplicator))

	hoffset := 1.0
	if rows <= 1 {
		hoffset = 0.5
	}
	cols := int(math.Ceil(
		math.Max(width-hoffset, hexHorizontalMultiplicator) /
			hexHorizontalMultiplicator))

	return cols, rows
}
