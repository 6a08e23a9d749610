// Package contour extracts the outlines of a maze's solid boundaries as
// closed polylines, ready for vector rendering.
//
// Lines scans the carved rooms of a maze row by row and, for every closed
// wall not yet covered, follows the boundary it belongs to with the wall
// follower, collecting the corner points passed along the way. Every
// boundary — the outer rim as well as interior cavities — comes out as
// exactly one polyline, and every closed wall of a carved room is covered
// exactly once. A maze whose rooms were never carved produces no lines.
//
// Each polyline starts at the corner of its first wall furthest from the
// following wall and continues with, per wall, the corner furthest from
// the previous point, so consecutive points always span one wall.
//
// Complexity: O(W·H·n) for a shape with n walls per room.
package contour
