package physical_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlmaze/physical"
)

const epsilon = 1e-9

// TestPosArithmetic covers the vector helpers.
func TestPosArithmetic(t *testing.T) {
	p := physical.Pos{X: 3, Y: -1}
	q := physical.Pos{X: 1, Y: 2}

	assert.Equal(t, physical.Pos{X: 4, Y: 1}, p.Add(q))
	assert.Equal(t, physical.Pos{X: 2, Y: -3}, p.Sub(q))
	assert.Equal(t, physical.Pos{X: 6, Y: -2}, p.Scale(2))
}

// TestPosValue verifies the squared length.
func TestPosValue(t *testing.T) {
	assert.InDelta(t, 25.0, physical.Pos{X: 3, Y: 4}.Value(), epsilon)
	assert.Zero(t, physical.Pos{}.Value())
}

// TestNewAngle verifies the cos/sin invariant at the cardinal directions.
func TestNewAngle(t *testing.T) {
	cases := []struct {
		name   string
		a      float64
		dx, dy float64
	}{
		{"Right", 0, 1, 0},
		{"Down", math.Pi / 2, 0, 1},
		{"Left", math.Pi, -1, 0},
		{"Up", 3 * math.Pi / 2, 0, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			angle := physical.NewAngle(tc.a)
			assert.InDelta(t, tc.dx, angle.Dx, epsilon)
			assert.InDelta(t, tc.dy, angle.Dy, epsilon)
		})
	}
}

// TestPosStep verifies displacement along an angle's unit vector.
func TestPosStep(t *testing.T) {
	start := physical.Pos{X: 1, Y: 1}

	stepped := start.Step(physical.NewAngle(math.Pi / 2))

	assert.InDelta(t, 1.0, stepped.X, epsilon)
	assert.InDelta(t, 2.0, stepped.Y, epsilon)
}
