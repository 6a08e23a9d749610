package matrix

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors reported by the matrix package.
var (
	// ErrSizeMismatch indicates that deserialized cell data does not contain
	// exactly width*height elements.
	ErrSizeMismatch = errors.New("matrix: data length does not match dimensions")
)

// Pos addresses a cell as a (column, row) pair. Both coordinates are signed:
// positions outside a matrix are representable and compare normally.
type Pos struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Add returns the position displaced by d.
func (p Pos) Add(d Pos) Pos {
	return Pos{Col: p.Col + d.Col, Row: p.Row + d.Row}
}

// Compare orders positions lexicographically by column, then row.
func (p Pos) Compare(q Pos) int {
	if c := cmp.Compare(p.Col, q.Col); c != 0 {
		return c
	}

	return cmp.Compare(p.Row, q.Row)
}

// String renders the position as "(col,row)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Numeric constrains the element types that support element-wise
// accumulation via Add.
type Numeric interface {
	~int | ~int32 | ~int64 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// PosPair is an ordered pair of adjacent positions produced by Edges: From
// lies in the region with the smaller label, To in the one with the larger.
type PosPair struct {
	From Pos
	To   Pos
}

// Edge groups every adjacency between two labelled regions. Low < High and
// Pairs is sorted lexicographically with duplicates removed, so iterating
// the Edges output is deterministic across runs.
type Edge[T cmp.Ordered] struct {
	Low   T
	High  T
	Pairs []PosPair
}
