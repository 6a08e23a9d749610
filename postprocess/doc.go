// Package postprocess reworks an already generated maze: the break action
// opens extra walls along heavily traversed corridors, trading the perfect
// maze property for loops that spread traffic.
//
// Break repeatedly collects a heat map and, in rooms whose heat makes the
// probability check pass, opens one random wall leading to another room of
// the maze. Hot corridors are the most likely to be broken open. Applying
// a break to a maze generated from a seeded randomizer remains
// reproducible.
//
// Errors:
//
//   - heatmap.ErrUnknownType if a break description names an unknown heat
//     map type.
//   - ErrBadCount if a break description carries a malformed count.
package postprocess
