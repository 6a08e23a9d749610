// Package matrix provides the dense two-dimensional containers behind every
// maze: room grids, candidate masks, area labels and heat maps.
//
// The matrix package provides:
//
//   - Pos, a signed column/row coordinate ordered lexicographically.
//   - Matrix[T], a width×height value container backed by a single flat
//     slice in row-major order.
//   - Grid algorithms shared by the generators: Fill (depth-first flood
//     fill), Edges (adjacency between labelled regions), Filter (predicate
//     masks) and Add (element-wise accumulation).
//   - Partition, the floor/fraction split used by the continuous-to-grid
//     coordinate transforms.
//
// Positions outside the matrix are ordinary values: IsInside reports
// whether a position addresses a cell, At panics on outside positions
// (programmer error) and Get returns absence instead. The geometry code
// relies on representing outside positions when probing neighbour rooms.
//
// Complexity:
//
//   - At / Get / IsInside: O(1).
//   - Positions / Values / Map / Filter / Add: O(width·height).
//   - Fill: O(A·N) where A is the filled area and N the neighbour count.
//   - Edges: O(width·height·N + P·log P) where P is the number of
//     adjacent label pairs.
//
// Errors:
//
//   - ErrSizeMismatch if serialized cell data does not match its declared
//     dimensions.
package matrix
