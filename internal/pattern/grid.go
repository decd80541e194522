package pattern

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedGrid is returned when grid input has ragged rows or zero
// dimensions. Use errors.Is to test for it.
var ErrMalformedGrid = errors.New("malformed grid")

// Grid is a rectangular, row-major array of Symbol with height H >= 1 and
// width W >= 1. Grids are value types and are never mutated after
// construction; operations that change a grid return a new one.
type Grid struct {
	cells  []Symbol
	height int
	width  int
}

// NewGrid builds a Grid from rows of symbols. All rows must have the same
// nonzero width and there must be at least one row; anything else is a
// precondition violation reported via ErrMalformedGrid.
func NewGrid(rows [][]Symbol) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, fmt.Errorf("%w: no rows", ErrMalformedGrid)
	}
	width := len(rows[0])
	if width == 0 {
		return Grid{}, fmt.Errorf("%w: zero width", ErrMalformedGrid)
	}
	cells := make([]Symbol, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			return Grid{}, fmt.Errorf("%w: row %d has width %d, want %d",
				ErrMalformedGrid, i, len(row), width)
		}
		cells = append(cells, row...)
	}
	return Grid{cells: cells, height: len(rows), width: width}, nil
}

// MustGrid is NewGrid for literals that are known to be well formed; it
// panics on malformed input. Intended for tests and built-in fixtures.
func MustGrid(rows [][]Symbol) Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// IsZero reports whether g is the zero Grid (no cells). The zero Grid is not
// a valid grid; it only arises from the zero value, never from NewGrid.
func (g Grid) IsZero() bool { return g.height == 0 }

// At returns the symbol at row r, column c (both 0-based). It panics when the
// position is out of range, matching slice semantics.
func (g Grid) At(r, c int) Symbol {
	if r < 0 || r >= g.height || c < 0 || c >= g.width {
		panic(fmt.Sprintf("pattern: position (%d,%d) outside %dx%d grid", r, c, g.height, g.width))
	}
	return g.cells[r*g.width+c]
}

// Row returns a copy of row r.
func (g Grid) Row(r int) []Symbol {
	row := make([]Symbol, g.width)
	copy(row, g.cells[r*g.width:(r+1)*g.width])
	return row
}

// Rows returns a copy of the full grid as a slice of rows.
func (g Grid) Rows() [][]Symbol {
	rows := make([][]Symbol, g.height)
	for r := 0; r < g.height; r++ {
		rows[r] = g.Row(r)
	}
	return rows
}

// Equal reports whether two grids have identical dimensions and cells.
func (g Grid) Equal(other Grid) bool {
	if g.height != other.height || g.width != other.width {
		return false
	}
	for i, s := range g.cells {
		if other.cells[i] != s {
			return false
		}
	}
	return true
}

// GlyphRows renders the grid as one string per row, cells separated by single
// spaces, using the arrow glyphs. This is the display form used by reports.
func (g Grid) GlyphRows() []string {
	out := make([]string, g.height)
	var b strings.Builder
	for r := 0; r < g.height; r++ {
		b.Reset()
		for c := 0; c < g.width; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g.cells[r*g.width+c].Glyph())
		}
		out[r] = b.String()
	}
	return out
}

// String renders the grid's dimensions and glyph rows for diagnostics.
func (g Grid) String() string {
	return fmt.Sprintf("%dx%d grid:\n%s", g.height, g.width, strings.Join(g.GlyphRows(), "\n"))
}
