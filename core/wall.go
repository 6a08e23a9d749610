package core

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlmaze/matrix"
	"github.com/katalvlaran/lvlmaze/physical"
)

// radianBound is the upper bound of normalized angles.
const radianBound = 2 * math.Pi

// Mask is a bit set of wall indices within one room.
type Mask uint32

// Offset locates a wall meeting a shared corner: the room displacement
// relative to the anchor room, and the wall of that room that touches the
// corner.
type Offset struct {
	Dx   int
	Dy   int
	Wall *Wall
}

// Span is the angular interval a wall subtends as seen from its room centre.
// Both ends are normalized to [0, 2π); a span whose End is less than its
// Start wraps through zero.
type Span struct {
	Start physical.Angle
	End   physical.Angle
}

// Wall is one side of a room. All walls live in per-shape catalogs and every
// room of a shape references the same Wall values, so pointer comparison is
// the identity test.
type Wall struct {
	// Name is the canonical "Shape:WALL" identifier used for serialization.
	Name string

	// Shape is the room shape this wall belongs to.
	Shape Shape

	// Index is the position in the shape catalog. It is unique per shape and
	// selects the bit in a room Mask.
	Index int

	// Ordinal is the position in the wall list of a room, in the range
	// [0, n) for a room with n walls.
	Ordinal int

	// Dir is the matrix displacement to the room on the other side.
	Dir matrix.Pos

	// Span is the angular interval occupied by the wall.
	Span Span

	// CornerWallOffsets lists the other walls meeting the corner at the
	// wall's span start.
	CornerWallOffsets []Offset

	// Previous and Next are the walls adjacent in the same room, ordered by
	// span continuity: Previous ends where this wall starts, Next starts
	// where it ends.
	Previous *Wall
	Next     *Wall
}

// WallPos identifies one side of one wall by the room holding it.
type WallPos struct {
	Pos  matrix.Pos
	Wall *Wall
}

// NormalizedAngle maps an angle into [0, 2π).
func NormalizedAngle(angle float64) float64 {
	if angle < radianBound && angle >= 0 {
		return angle
	}
	t := math.Mod(angle, radianBound)
	if t >= 0 {
		return t
	}

	return t + radianBound
}

// Mask returns the bit representing this wall in a room mask.
func (w *Wall) Mask() Mask {
	return 1 << w.Index
}

// InSpan reports whether the angle, once normalized, falls inside the wall
// span. Spans are half-open: the start is included, the end is not.
func (w *Wall) InSpan(angle float64) bool {
	a := NormalizedAngle(angle)
	if w.Span.Start.A < w.Span.End.A {
		return w.Span.Start.A <= a && a < w.Span.End.A
	}

	return w.Span.Start.A <= a || a < w.Span.End.A
}

// String returns the canonical wall name.
func (w *Wall) String() string {
	return w.Name
}

// MarshalText encodes the wall as its canonical name.
func (w *Wall) MarshalText() ([]byte, error) {
	return []byte(w.Name), nil
}

// UnmarshalText decodes a wall from its canonical name. The decoded value
// is a copy of the catalog wall, so its pointer fields still reference the
// catalog.
func (w *Wall) UnmarshalText(text []byte) error {
	wall, err := WallByName(string(text))
	if err != nil {
		return err
	}
	*w = *wall

	return nil
}

// WallByName resolves a canonical wall name to its catalog value.
func WallByName(name string) (*Wall, error) {
	for _, shape := range []Shape{Hex, Quad, Tri} {
		for _, wall := range shape.AllWalls() {
			if wall.Name == name {
				return wall, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownWall, name)
}

// newSpan builds a span from two angles in radians, normalizing both ends.
func newSpan(start, end float64) Span {
	return Span{
		Start: physical.NewAngle(NormalizedAngle(start)),
		End:   physical.NewAngle(NormalizedAngle(end)),
	}
}
