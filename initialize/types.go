package initialize

import (
	"errors"

	"github.com/katalvlaran/lvlmaze/matrix"
)

// Sentinel errors reported by the initialize package.
var (
	// ErrUnknownMethod indicates a method name that does not map to a
	// generation algorithm.
	ErrUnknownMethod = errors.New("initialize: unknown method")

	// ErrUnknownInstruction indicates a spelunker program containing a
	// character that is not an instruction.
	ErrUnknownInstruction = errors.New("initialize: unknown instruction")
)

// Randomizer is the source of randomness for the generation algorithms.
// Implementations need not be safe for concurrent use.
type Randomizer interface {
	// Range returns a value in [low, high), where low and high are the
	// smaller and larger of a and b. When a == b, that value is returned.
	Range(a, b int) int

	// Random returns a value in [0, 1).
	Random() float64
}

// Filter restricts the rooms participating in generation. Rooms for which
// it returns false are left fully closed and untouched.
type Filter func(matrix.Pos) bool
