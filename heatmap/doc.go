// Package heatmap measures how often rooms are traversed when walking a
// maze, producing per-room counters for hot-spot analysis and colouring.
//
// The heatmap package provides:
//
//   - HeatMap, a matrix of traversal counts.
//   - Collect, accumulating the rooms of the shortest path for every pair
//     of endpoints; pairs with no path between them are skipped.
//   - Type, a parseable selection of endpoint generation: vertical
//     (top edge to bottom edge), horizontal (left to right) and full
//     (every edge room to its diametric opposite), with Generate running
//     the collection.
//   - CollectParallel, fanning the pairs out across goroutines over the
//     shared read-only maze and merging the partial maps element-wise.
//     This is the package's only concurrency; the maze must not be mutated
//     while it runs.
//
// Complexity: one Walk per pair, O(P·W·H·log(W·H)) total.
//
// Errors:
//
//   - ErrUnknownType if a heat map type name does not parse.
package heatmap
