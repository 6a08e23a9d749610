package initialize

import "math"

// LFSR is a 64-bit linear feedback shift register. It is a deterministic
// Randomizer: two registers created with the same seed produce identical
// output streams, bit for bit, so a maze can be reproduced from a numeric
// seed alone.
//
// The zero value is degenerate (a register holding zero never leaves it);
// construct with NewLFSR.
type LFSR struct {
	state uint64
}

// NewLFSR returns a register initialized with seed. The seed itself is
// never yielded.
func NewLFSR(seed uint64) *LFSR {
	return &LFSR{state: seed}
}

// next shifts the register by one bit using taps 0, 2, 3 and 5.
func (l *LFSR) next() {
	bit := (l.state ^ l.state>>2 ^ l.state>>3 ^ l.state>>5) & 1
	l.state = l.state>>1 | bit<<63
}

// advance shifts the register by a full word and returns it.
func (l *LFSR) advance() uint64 {
	for i := 0; i < 64; i++ {
		l.next()
	}

	return l.state
}

// Range returns a value in [low, high), where low and high are the smaller
// and larger of a and b. When a == b, that value is returned.
func (l *LFSR) Range(a, b int) int {
	value := l.advance()
	low, high := a, b
	if low > high {
		low, high = high, low
	}
	if low == high {
		return low
	}

	return low + int(value%uint64(high-low))
}

// Random returns a value in [0, 1).
func (l *LFSR) Random() float64 {
	return float64(l.advance()) / float64(math.MaxUint64)
}
