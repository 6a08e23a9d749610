package matrix

import (
	"fmt"
	"iter"
)

// Matrix is a dense width×height container of T stored row-major in a
// single allocation.
type Matrix[T any] struct {
	width  int
	height int
	data   []T
}

// New returns a width×height matrix of zero values. Negative dimensions are
// clamped to zero.
func New[T any](width, height int) *Matrix[T] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	return &Matrix[T]{width: width, height: height, data: make([]T, width*height)}
}

// NewWithData returns a width×height matrix with every cell initialized by
// f, called in row-major order.
func NewWithData[T any](width, height int, f func(Pos) T) *Matrix[T] {
	m := New[T](width, height)
	for pos := range m.Positions() {
		m.data[m.index(pos)] = f(pos)
	}

	return m
}

// Width returns the number of columns.
func (m *Matrix[T]) Width() int { return m.width }

// Height returns the number of rows.
func (m *Matrix[T]) Height() int { return m.height }

// IsInside reports whether pos addresses a cell of the matrix.
func (m *Matrix[T]) IsInside(pos Pos) bool {
	return pos.Col >= 0 && pos.Col < m.width && pos.Row >= 0 && pos.Row < m.height
}

// index maps an inside position to its flat row-major offset.
func (m *Matrix[T]) index(pos Pos) int {
	return pos.Col + pos.Row*m.width
}

// At returns a pointer to the cell at pos. It panics when pos lies outside
// the matrix; use Get when the position is not known to be valid.
func (m *Matrix[T]) At(pos Pos) *T {
	if !m.IsInside(pos) {
		panic(fmt.Sprintf("matrix: position %v outside %dx%d", pos, m.width, m.height))
	}

	return &m.data[m.index(pos)]
}

// Get returns a pointer to the cell at pos, or (nil, false) when pos lies
// outside the matrix.
func (m *Matrix[T]) Get(pos Pos) (*T, bool) {
	if !m.IsInside(pos) {
		return nil, false
	}

	return &m.data[m.index(pos)], true
}

// Clone returns a deep copy of the matrix. Cell values are copied with
// assignment semantics.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := &Matrix[T]{width: m.width, height: m.height, data: make([]T, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Positions yields every position in row-major order. The sequence is
// restartable: ranging over it again starts from the beginning.
func (m *Matrix[T]) Positions() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for row := 0; row < m.height; row++ {
			for col := 0; col < m.width; col++ {
				if !yield(Pos{Col: col, Row: row}) {
					return
				}
			}
		}
	}
}

// Values yields every cell value in row-major order.
func (m *Matrix[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range m.data {
			if !yield(m.data[i]) {
				return
			}
		}
	}
}
