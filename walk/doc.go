// Package walk finds routes through a maze: shortest paths between rooms
// and wall-hugging traversals along its solid boundaries.
//
// The walk package provides:
//
//   - Walk, an A* search over the open-wall graph with unit step costs and
//     a Manhattan heuristic. It returns a Path, a restartable iterator over
//     the rooms from start to goal inclusive, or nil when the rooms are
//     not connected. The search runs backwards internally so the backtrace
//     reads forwards without reversal.
//   - Follow, which hugs a solid boundary clockwise starting from a closed
//     wall, yielding every closed wall encountered without ever crossing
//     an open one, until the starting wall recurs. Contour extraction and
//     outline rendering are built on it.
//
// Walking between the same room yields a single-room path. Disconnected
// queries are not errors; Walk simply returns nil.
//
// Complexity:
//
//   - Walk: O(W·H·log(W·H)) with the binary-heap open set.
//   - Follow: O(L) where L is the boundary length.
package walk
