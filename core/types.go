package core

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the core package.
var (
	// ErrUnknownShape indicates a shape name or wall count that does not map
	// to a supported room shape.
	ErrUnknownShape = errors.New("core: unknown shape")

	// ErrUnknownWall indicates a wall name that does not exist in any shape
	// catalog.
	ErrUnknownWall = errors.New("core: unknown wall")
)

// Shape identifies the room geometry of a maze. The numeric value is the
// number of walls per room.
type Shape int

// The supported room shapes.
const (
	// Tri is a maze with triangular rooms.
	Tri Shape = 3

	// Quad is a maze with square rooms.
	Quad Shape = 4

	// Hex is a maze with hexagonal rooms.
	Hex Shape = 6
)

// ParseShape converts a lower-case shape name to a Shape.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "tri":
		return Tri, nil
	case "quad":
		return Quad, nil
	case "hex":
		return Hex, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownShape, s)
	}
}

// FromWallCount converts a number of walls per room to a Shape.
func FromWallCount(count int) (Shape, error) {
	switch Shape(count) {
	case Tri, Quad, Hex:
		return Shape(count), nil
	default:
		return 0, fmt.Errorf("%w: %d walls", ErrUnknownShape, count)
	}
}

// WallCount returns the number of walls per room for this shape.
func (s Shape) WallCount() int {
	return int(s)
}

// String returns the lower-case shape name, the inverse of ParseShape.
func (s Shape) String() string {
	switch s {
	case Tri:
		return "tri"
	case Quad:
		return "quad"
	case Hex:
		return "hex"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// MarshalText encodes the shape as its name.
func (s Shape) MarshalText() ([]byte, error) {
	switch s {
	case Tri, Quad, Hex:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(s))
	}
}

// UnmarshalText decodes a shape from its name.
func (s *Shape) UnmarshalText(text []byte) error {
	shape, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = shape

	return nil
}
