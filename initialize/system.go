package initialize

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// fallbackSeed is used when operating system entropy is unavailable. The
// value is arbitrary but stable.
const fallbackSeed int64 = 1

// System is a Randomizer seeded once from operating system entropy. It is
// the source to use when reproducibility is not required.
//
// System is not safe for concurrent use; create one per goroutine.
type System struct {
	rng *rand.Rand
}

// NewSystem returns a randomizer seeded from operating system entropy.
func NewSystem() *System {
	var buf [8]byte
	seed := fallbackSeed
	if _, err := cryptorand.Read(buf[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(buf[:]))
	}

	return &System{rng: rand.New(rand.NewSource(seed))}
}

// Range returns a value in [low, high), where low and high are the smaller
// and larger of a and b. When a == b, that value is returned.
func (s *System) Range(a, b int) int {
	low, high := a, b
	if low > high {
		low, high = high, low
	}
	if low == high {
		return low
	}

	return low + s.rng.Intn(high-low)
}

// Random returns a value in [0, 1).
func (s *System) Random() float64 {
	return s.rng.Float64()
}
