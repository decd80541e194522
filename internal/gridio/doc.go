// Package gridio reads and writes the persisted symbol-grid representation.
//
// The on-disk form is a JSON array of rows, each row an array of one-glyph
// cell strings: the four directional arrows, or a single space for a cell
// with no reliable reading. All rows have uniform length.
//
// Two error kinds are distinguished so batch callers can report them without
// aborting the run: ErrUnreadableSource for files that cannot be parsed at
// all, and pattern.ErrMalformedGrid (from internal/pattern) for files that
// parse but describe a ragged or empty grid. Both are per-file failures.
package gridio
