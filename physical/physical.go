package physical

import "math"

// Pos is a point in the continuous plane.
type Pos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the component-wise sum of p and q.
func (p Pos) Add(q Pos) Pos {
	return Pos{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Pos) Sub(q Pos) Pos {
	return Pos{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by f.
func (p Pos) Scale(f float64) Pos {
	return Pos{X: p.X * f, Y: p.Y * f}
}

// Value returns the squared distance from the origin. Comparing squared
// distances avoids the square root when only the ordering matters.
func (p Pos) Value() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Step returns p displaced one unit along a.
func (p Pos) Step(a Angle) Pos {
	return Pos{X: p.X + a.Dx, Y: p.Y + a.Dy}
}

// Angle is an angle in radians along with its unit vector. Dx and Dy are
// always cos(A) and sin(A); construct values with NewAngle to keep that
// invariant.
type Angle struct {
	A  float64
	Dx float64
	Dy float64
}

// NewAngle returns the angle a with its unit vector precomputed.
func NewAngle(a float64) Angle {
	return Angle{A: a, Dx: math.Cos(a), Dy: math.Sin(a)}
}
