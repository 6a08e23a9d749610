package walk

import (
	"container/heap"

	"github.com/katalvlaran/lvlmaze/matrix"
)

// openSet is the A* frontier: a min-heap of room positions keyed by
// f-score, with a presence bitset for containment checks.
type openSet struct {
	width   int
	height  int
	heap    scoredHeap
	present []uint64
}

// scored is a room position with its f-score.
type scored struct {
	f   uint32
	pos matrix.Pos
}

// scoredHeap implements heap.Interface ordered by ascending f.
type scoredHeap []scored

func (h scoredHeap) Len() int            { return len(h) }
func (h scoredHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h scoredHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *scoredHeap) Push(x interface{}) { *h = append(*h, x.(scored)) }
func (h *scoredHeap) Pop() interface{} {
	old := *h
	n := len(old) - 1
	item := old[n]
	*h = old[:n]

	return item
}

func newOpenSet(width, height int) *openSet {
	return &openSet{
		width:   width,
		height:  height,
		present: make([]uint64, (width*height+63)/64),
	}
}

// index maps an inside position to its bit offset, or -1 outside.
func (s *openSet) index(pos matrix.Pos) int {
	if pos.Col < 0 || pos.Col >= s.width || pos.Row < 0 || pos.Row >= s.height {
		return -1
	}

	return pos.Col + pos.Row*s.width
}

// Push adds a position with an f-score. Positions outside the set's
// dimensions are ignored.
func (s *openSet) Push(f uint32, pos matrix.Pos) {
	if i := s.index(pos); i >= 0 {
		heap.Push(&s.heap, scored{f: f, pos: pos})
		s.present[i/64] |= 1 << (i % 64)
	}
}

// Pop removes and returns the position with the lowest f-score.
func (s *openSet) Pop() (matrix.Pos, bool) {
	if len(s.heap) == 0 {
		return matrix.Pos{}, false
	}
	pos := heap.Pop(&s.heap).(scored).pos
	if i := s.index(pos); i >= 0 {
		s.present[i/64] &^= 1 << (i % 64)
	}

	return pos, true
}

// Contains reports whether the position is in the set.
func (s *openSet) Contains(pos matrix.Pos) bool {
	i := s.index(pos)

	return i >= 0 && s.present[i/64]&(1<<(i%64)) != 0
}
