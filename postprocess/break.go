package postprocess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/heatmap"
	"github.com/katalvlaran/lvlmaze/initialize"
)

// ErrBadCount indicates a break description with a malformed repetition
// count.
var ErrBadCount = errors.New("postprocess: invalid count")

// Break describes the break action: Count rounds of collecting a Type heat
// map and probabilistically opening walls in hot rooms.
type Break struct {
	Type  heatmap.Type
	Count int
}

// ParseBreak converts a break description to a Break. The description is a
// heat map type name, optionally followed by a comma and a repetition
// count; the count defaults to one.
func ParseBreak(s string) (Break, error) {
	name, count, found := strings.Cut(s, ",")
	t, err := heatmap.ParseType(strings.TrimSpace(name))
	if err != nil {
		return Break{}, err
	}
	b := Break{Type: t, Count: 1}
	if found {
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil {
			return Break{}, fmt.Errorf("%w: %q", ErrBadCount, count)
		}
		b.Count = n
	}

	return b, nil
}

// String returns the break description, the inverse of ParseBreak.
func (b Break) String() string {
	return fmt.Sprintf("%s,%d", b.Type, b.Count)
}

// Apply runs the break action on the maze. Each round collects a heat map
// and, per room, passes when 1/(random·heat) falls below one half — the
// hotter the room, the more likely — then opens one random wall of the
// room leading to another room of the maze.
func Apply[T any](maze *core.Maze[T], b Break, rng initialize.Randomizer) {
	for round := 0; round < b.Count; round++ {
		heat := heatmap.Generate(maze, b.Type)
		for pos := range heat.Positions() {
			if 1/(rng.Random()*float64(*heat.At(pos))) >= 0.5 {
				continue
			}
			for {
				walls := maze.Walls(pos)
				wp := core.WallPos{Pos: pos, Wall: walls[rng.Range(0, len(walls))]}
				if maze.IsInside(maze.Back(wp).Pos) {
					maze.Open(wp)

					break
				}
			}
		}
	}
}
