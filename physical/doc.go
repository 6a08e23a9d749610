// Package physical provides the continuous-plane types the maze geometry is
// expressed in: positions, unit-vector angles and axis-aligned view boxes.
//
// The physical package provides:
//
//   - Pos, an (x, y) point with the vector helpers the shape math needs
//     (difference, squared length, scaling, stepping along an angle).
//   - Angle, an angle in radians carrying its precomputed cosine and sine,
//     so wall corners are reached without trigonometry at query time.
//   - ViewBox, an axis-aligned rectangle with centred construction,
//     expansion, containment and splitting.
//
// The plane follows raster orientation: x grows rightwards, y grows
// downwards, angles turn clockwise on screen. All operations are O(1) and
// allocation-free.
package physical
