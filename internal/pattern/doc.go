// Package pattern implements symmetry-aware matching of directional symbol grids.
//
// A Grid is a rectangular, row-major array of directional symbols (Up, Down,
// Left, Right) with Empty marking cells where no reliable reading exists.
// Grids are produced by the dot-extraction pipeline (see internal/detect and
// internal/minify) or loaded from their persisted JSON form (internal/gridio).
//
// # Matching
//
// FindPattern performs an exhaustive sliding-window search for a reference
// grid inside a larger candidate grid under all 8 symmetries of the dihedral
// group D4: the identity, three clockwise rotations, and the same four after a
// horizontal mirror. The enumeration order is fixed (transform outermost, then
// row, then column, all ascending), so results are fully deterministic: a
// match under an earlier transform always wins over a match under a later one,
// regardless of position.
//
// # Empty cells
//
// An Empty cell in the candidate never matches any pattern cell. Empty marks
// "unreadable", not "wildcard": a single Empty inside an otherwise exact
// window rejects that window.
//
// # Purity
//
// All transforms and the matcher are pure functions. Grids are never mutated
// after construction; transforms allocate new grids. Everything in this
// package is safe for concurrent use.
package pattern
