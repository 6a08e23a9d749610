package heatmap

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/matrix"
	"github.com/katalvlaran/lvlmaze/walk"
)

// ErrUnknownType indicates a heat map type name that does not parse.
var ErrUnknownType = errors.New("heatmap: unknown type")

// HeatMap counts, per room, how many collected paths traversed it.
type HeatMap = matrix.Matrix[uint32]

// Pair is a pair of rooms to walk between.
type Pair struct {
	From matrix.Pos
	To   matrix.Pos
}

// Collect walks every pair and counts how many paths traverse each room.
// Pairs without a connecting path are skipped.
func Collect[T any](maze *core.Maze[T], pairs []Pair) *HeatMap {
	result := matrix.New[uint32](maze.Width(), maze.Height())
	for _, pair := range pairs {
		path := walk.Walk(maze, pair.From, pair.To)
		if path == nil {
			continue
		}
		for pos := range path.Positions() {
			*result.At(pos)++
		}
	}

	return result
}

// CollectParallel behaves like Collect but fans the pairs out across
// workers goroutines, each walking its share of the pairs over the shared
// read-only maze, and merges the partial maps element-wise. workers values
// below one select the number of processors.
//
// The maze must not be mutated while the collection runs.
func CollectParallel[T any](maze *core.Maze[T], pairs []Pair, workers int) *HeatMap {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(pairs) {
		workers = len(pairs)
	}
	if workers <= 1 {
		return Collect(maze, pairs)
	}

	partials := make(chan *HeatMap, workers)
	var wg sync.WaitGroup
	chunk := (len(pairs) + workers - 1) / workers
	for start := 0; start < len(pairs); start += chunk {
		end := min(start+chunk, len(pairs))
		wg.Add(1)
		go func(share []Pair) {
			defer wg.Done()
			partials <- Collect(maze, share)
		}(pairs[start:end])
	}
	wg.Wait()
	close(partials)

	result := matrix.New[uint32](maze.Width(), maze.Height())
	for partial := range partials {
		matrix.Add(result, partial)
	}

	return result
}

// Type selects how heat map endpoints are generated.
type Type int

// The heat map types.
const (
	// Vertical walks every column from the top edge to the bottom edge.
	Vertical Type = iota

	// Horizontal walks every row from the left edge to the right edge.
	Horizontal

	// Full walks every room of the top and left edges to the room mirrored
	// through the maze centre.
	Full
)

// ParseType converts a lower-case type name to a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	case "full":
		return Full, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// String returns the type name, the inverse of ParseType.
func (t Type) String() string {
	switch t {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// Pairs generates the endpoint pairs for a width×height maze.
func (t Type) Pairs(width, height int) []Pair {
	var pairs []Pair
	switch t {
	case Vertical:
		for col := 0; col < width; col++ {
			pairs = append(pairs, Pair{
				From: matrix.Pos{Col: col, Row: 0},
				To:   matrix.Pos{Col: col, Row: height - 1},
			})
		}
	case Horizontal:
		for row := 0; row < height; row++ {
			pairs = append(pairs, Pair{
				From: matrix.Pos{Col: 0, Row: row},
				To:   matrix.Pos{Col: width - 1, Row: row},
			})
		}
	case Full:
		for row := 0; row < height; row++ {
			for col := 0; col < width; col++ {
				if col != 0 && row != 0 {
					continue
				}
				pairs = append(pairs, Pair{
					From: matrix.Pos{Col: col, Row: row},
					To:   matrix.Pos{Col: width - 1 - col, Row: height - 1 - row},
				})
			}
		}
	}

	return pairs
}

// Generate collects the heat map for the type's endpoint pairs, fanning out
// across the available processors.
func Generate[T any](maze *core.Maze[T], t Type) *HeatMap {
	return CollectParallel(maze, t.Pairs(maze.Width(), maze.Height()), 0)
}
