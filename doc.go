// Package lvlmaze is your in-memory playground for generating, solving and
// tracing mazes over triangular, square and hexagonal rooms.
//
// 🚀 What is lvlmaze?
//
//	A modern library that brings together:
//		• Core primitives: rooms, walls, shapes and both-sided wall state
//		• Generators: Prim branching, DFS winding, braiding, recursive
//		  division and an instruction-driven spelunker — all filterable
//		• Reproducibility: a 64-bit LFSR randomizer, bit-for-bit stable
//		• Solving: A* walks with lazily re-walkable paths
//		• Tracing: wall-following boundary polylines for rendering
//		• Analysis: traversal heat maps and weighted Voronoi segmentation
//
// ✨ Why choose lvlmaze?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Shape-polymorphic – one code path for tri, quad and hex rooms
//   - Deterministic – seeded runs reproduce mazes exactly
//   - Extensible – filters and randomizers are plain values you provide
//
// Under the hood, everything is organized under focused subpackages:
//
//	matrix/      — generic row-major grids, positions and element-wise ops
//	physical/    — continuous-plane points, angles and viewboxes
//	core/        — Maze, Room, Wall, Shape and the geometry bridge
//	initialize/  — generation methods, randomizers and area reconnection
//	walk/        — A* pathfinding and boundary following
//	contour/     — closed polylines along the solid walls
//	heatmap/     — parallel traversal-frequency maps
//	voronoi/     — weighted segmentation and per-segment generation
//	postprocess/ — heat-driven wall breaking
//
// Quick ASCII example:
//
//	┌───┬───┐
//	│       │
//	├───╴   │
//	│       │
//	└───────┘
//
//	a 2×2 square maze with three opened walls.
//
// Dive into the package docs for the generation methods, the wall span
// geometry and the instruction language of the spelunker.
//
//	go get github.com/katalvlaran/lvlmaze
package lvlmaze
