package voronoi

import (
	"math"

	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/initialize"
	"github.com/katalvlaran/lvlmaze/matrix"
	"github.com/katalvlaran/lvlmaze/physical"
)

// Seed is one weighted centre point of a segmentation. Rooms are claimed
// by the seed minimizing squared-distance ÷ weight, so heavier seeds claim
// larger regions.
type Seed[V any] struct {
	Pos    physical.Pos
	Weight float64
	Value  V
}

// Assign labels every room of the maze with the value of its nearest seed.
// With no seeds, every room receives the zero value.
func Assign[T, V any](maze *core.Maze[T], seeds []Seed[V]) *matrix.Matrix[V] {
	return matrix.NewWithData(maze.Width(), maze.Height(), func(pos matrix.Pos) V {
		center := maze.Center(pos)

		var value V
		best := math.Inf(1)
		for _, seed := range seeds {
			if d := seed.Pos.Sub(center).Value() / seed.Weight; d < best {
				best = d
				value = seed.Value
			}
		}

		return value
	})
}

// Initialize segments the maze into one random region per method, applies
// each method to its region restricted by filter, and reconnects the
// regions. It returns the segmentation matrix, whose values index into
// methods.
func Initialize[T any](maze *core.Maze[T], methods []initialize.Method, rng initialize.Randomizer, filter initialize.Filter) *matrix.Matrix[int] {
	viewbox := maze.Viewbox()
	seeds := make([]Seed[int], len(methods))
	for i := range methods {
		seeds[i] = Seed[int]{
			Pos: physical.Pos{
				X: viewbox.Corner.X + rng.Random()*viewbox.Width,
				Y: viewbox.Corner.Y + rng.Random()*viewbox.Height,
			},
			Weight: rng.Random() + 0.5,
			Value:  i,
		}
	}
	segments := Assign(maze, seeds)

	for i, method := range methods {
		initialize.InitializeFilter(maze, method, rng, func(pos matrix.Pos) bool {
			return filter(pos) && *segments.At(pos) == i
		})
	}
	initialize.ConnectAll(maze, rng, filter)

	return segments
}
