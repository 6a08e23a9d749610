// Package initialize opens walls in a fully closed maze to make it
// navigable: the generation algorithms and the random sources driving them.
//
// The initialize package provides:
//
//   - Randomizer, the capability every generator draws randomness from,
//     with two implementations: LFSR, a seedable 64-bit linear feedback
//     shift register reproducing bit-for-bit across runs, and System,
//     seeded once from operating system entropy.
//   - Method, a parseable selection of generation algorithm: Branching
//     (randomized Prim), Winding (depth-first backtracking), Clear, Braid,
//     Dividing (recursive division) and Spelunker (instruction-driven
//     carving).
//   - Initialize and InitializeFilter, applying a method to a maze. The
//     filter restricts which rooms participate: rooms failing it are left
//     fully closed and untouched, and a filter matching nothing leaves the
//     maze unchanged.
//   - ConnectAll, the connectivity repair shared by the loop-forming
//     methods: it labels the connected areas of the filtered maze and
//     opens one random wall between every pair of adjacent areas.
//
// All methods handle disconnected candidate regions: generation restarts
// from a fresh random room whenever a region is exhausted, so every
// candidate room is reached. Branching and Winding produce spanning
// forests (exactly one path between any two rooms of the same region);
// Braid produces mazes without dead ends; Clear produces open halls.
//
// Generation is deterministic given the Randomizer stream: two runs over
// equal mazes with equally seeded LFSRs produce identical wall state.
//
// Complexity:
//
//   - Branching, Winding, Clear, Spelunker: O(width·height) rooms visited,
//     each a constant number of times for a fixed shape.
//   - Braid: O(W·H·log(W·H)) for the wall ordering.
//   - Dividing: O(W·H·D) where D is the recursion depth of the cuts.
//   - ConnectAll: O(W·H + P) where P is the number of adjacent area pairs.
//
// Errors:
//
//   - ErrUnknownMethod if a method name does not parse.
//   - ErrUnknownInstruction if a spelunker program contains an unknown
//     character.
package initialize
