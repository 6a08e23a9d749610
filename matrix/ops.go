package matrix

import (
	"cmp"
	"math"
	"slices"
)

// Map returns a new matrix with every cell transformed by f.
func Map[T, U any](m *Matrix[T], f func(T) U) *Matrix[U] {
	return NewWithData(m.width, m.height, func(pos Pos) U {
		return f(m.data[m.index(pos)])
	})
}

// MapWithPos returns a new matrix with every cell transformed by f, which
// also receives the cell position.
func MapWithPos[T, U any](m *Matrix[T], f func(Pos, T) U) *Matrix[U] {
	return NewWithData(m.width, m.height, func(pos Pos) U {
		return f(pos, m.data[m.index(pos)])
	})
}

// Fill flood-fills value from pos, walking the positions produced by
// neighbors, and returns the number of cells written. Neighbours outside
// the matrix or already holding value are skipped; filling an outside
// position writes nothing and returns 0.
func Fill[T comparable](m *Matrix[T], pos Pos, value T, neighbors func(Pos) []Pos) int {
	if !m.IsInside(pos) {
		return 0
	}

	m.data[m.index(pos)] = value
	count := 1
	stack := []Pos{pos}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range neighbors(current) {
			if !m.IsInside(next) || m.data[m.index(next)] == value {
				continue
			}
			m.data[m.index(next)] = value
			count++
			// Revisit current later: it may have further unfilled neighbours.
			stack = append(stack, current, next)

			break
		}
	}

	return count
}

// Edges collects every adjacency between differently labelled cells. For
// each cell and each of its in-bounds neighbours, the unordered label pair
// (low, high) receives the position pair oriented low→high. Groups come out
// sorted by (Low, High) and pairs lexicographically with duplicates
// removed, so iteration order is stable across runs.
func Edges[T cmp.Ordered](m *Matrix[T], neighbors func(Pos) []Pos) []Edge[T] {
	groups := map[[2]T]map[PosPair]struct{}{}
	for p1 := range m.Positions() {
		v1 := m.data[m.index(p1)]
		for _, p2 := range neighbors(p1) {
			if !m.IsInside(p2) {
				continue
			}

			var (
				key  [2]T
				pair PosPair
			)
			switch v2 := m.data[m.index(p2)]; {
			case v1 < v2:
				key, pair = [2]T{v1, v2}, PosPair{From: p1, To: p2}
			case v1 > v2:
				key, pair = [2]T{v2, v1}, PosPair{From: p2, To: p1}
			default:
				continue
			}

			set, ok := groups[key]
			if !ok {
				set = map[PosPair]struct{}{}
				groups[key] = set
			}
			set[pair] = struct{}{}
		}
	}

	edges := make([]Edge[T], 0, len(groups))
	for key, set := range groups {
		pairs := make([]PosPair, 0, len(set))
		for pair := range set {
			pairs = append(pairs, pair)
		}
		slices.SortFunc(pairs, func(a, b PosPair) int {
			if c := a.From.Compare(b.From); c != 0 {
				return c
			}

			return a.To.Compare(b.To)
		})
		edges = append(edges, Edge[T]{Low: key[0], High: key[1], Pairs: pairs})
	}
	slices.SortFunc(edges, func(a, b Edge[T]) int {
		if c := cmp.Compare(a.Low, b.Low); c != 0 {
			return c
		}

		return cmp.Compare(a.High, b.High)
	})

	return edges
}

// Add accumulates src into dst element-wise over the overlapping region
// (the smaller of each dimension). dst keeps its own size.
func Add[T Numeric](dst, src *Matrix[T]) {
	width := min(dst.width, src.width)
	height := min(dst.height, src.height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			pos := Pos{Col: col, Row: row}
			dst.data[dst.index(pos)] += src.data[src.index(pos)]
		}
	}
}

// Filter evaluates predicate over a width×height grid and returns the
// number of matching positions along with the boolean mask.
func Filter(width, height int, predicate func(Pos) bool) (int, *Matrix[bool]) {
	count := 0
	mask := NewWithData(width, height, func(pos Pos) bool {
		ok := predicate(pos)
		if ok {
			count++
		}

		return ok
	})

	return count, mask
}

// Partition splits x into its integral floor and non-negative fractional
// part, so Partition(-1.2) = (-2, 0.8).
func Partition(x float64) (int, float64) {
	floor := math.Floor(x)

	return int(floor), x - floor
}
