// Package voronoi segments a maze into regions around weighted centre
// points and generates each region with its own method, producing
// mixed-texture mazes.
//
// The voronoi package provides:
//
//   - Assign, labelling every room with the value of the nearest seed
//     point, where distance is the squared physical distance to the room
//     centre divided by the seed's weight. Heavier seeds claim larger
//     regions.
//   - Initialize, which drops one random seed per generation method into
//     the maze's viewbox, applies each method to its region, and finally
//     reconnects the regions with one opening per adjacent pair. The
//     segmentation matrix is returned alongside for callers colouring or
//     inspecting the regions.
//
// Complexity: Assign is O(W·H·S) for S seeds; Initialize adds one
// generator run per method plus the reconnection pass.
package voronoi
