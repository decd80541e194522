package gridio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dotgrid/pattern-tools/internal/pattern"
)

// ErrUnreadableSource is returned when a persisted grid cannot be parsed.
// Use errors.Is to test for it.
var ErrUnreadableSource = errors.New("unreadable grid source")

// DecodeGrid parses the persisted JSON grid representation from r.
func DecodeGrid(r io.Reader) (pattern.Grid, error) {
	var cells [][]string
	if err := json.NewDecoder(r).Decode(&cells); err != nil {
		return pattern.Grid{}, fmt.Errorf("%w: %v", ErrUnreadableSource, err)
	}
	return gridFromCells(cells)
}

// LoadGrid reads and parses the grid file at path.
func LoadGrid(path string) (pattern.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return pattern.Grid{}, fmt.Errorf("%w: %w", ErrUnreadableSource, err)
	}
	defer f.Close()

	g, err := DecodeGrid(f)
	if err != nil {
		return pattern.Grid{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// EncodeGrid writes g to w in the persisted JSON representation, indented
// for readability.
func EncodeGrid(w io.Writer, g pattern.Grid) error {
	cells := make([][]string, g.Height())
	for r := 0; r < g.Height(); r++ {
		row := make([]string, g.Width())
		for c := 0; c < g.Width(); c++ {
			row[c] = g.At(r, c).Glyph()
		}
		cells[r] = row
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(cells); err != nil {
		return fmt.Errorf("failed to encode grid: %w", err)
	}
	return nil
}

// SaveGrid writes g to the file at path, creating or truncating it.
func SaveGrid(path string, g pattern.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create grid file: %w", err)
	}
	if err := EncodeGrid(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ParseArrowText parses a grid from plain text: one row per line, one glyph
// rune per cell. Lines shorter than the widest line are right-padded with
// Empty, matching how raw extraction dumps are written. Trailing newlines are
// ignored; a text with no cells at all is malformed.
func ParseArrowText(text string) (pattern.Grid, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	rows := make([][]pattern.Symbol, 0, len(lines))
	maxWidth := 0
	for i, line := range lines {
		var row []pattern.Symbol
		for _, r := range line {
			s, err := pattern.ParseSymbol(string(r))
			if err != nil {
				return pattern.Grid{}, fmt.Errorf("%w: line %d: %v", ErrUnreadableSource, i, err)
			}
			row = append(row, s)
		}
		if len(row) > maxWidth {
			maxWidth = len(row)
		}
		rows = append(rows, row)
	}
	if maxWidth == 0 {
		return pattern.Grid{}, fmt.Errorf("%w: no cells", pattern.ErrMalformedGrid)
	}
	for i, row := range rows {
		for len(row) < maxWidth {
			row = append(row, pattern.Empty)
		}
		rows[i] = row
	}
	return pattern.NewGrid(rows)
}

// gridFromCells converts parsed cell strings to a Grid, mapping glyph
// failures to ErrUnreadableSource and shape failures to ErrMalformedGrid.
func gridFromCells(cells [][]string) (pattern.Grid, error) {
	rows := make([][]pattern.Symbol, len(cells))
	for r, rowCells := range cells {
		row := make([]pattern.Symbol, len(rowCells))
		for c, cell := range rowCells {
			s, err := pattern.ParseSymbol(cell)
			if err != nil {
				return pattern.Grid{}, fmt.Errorf("%w: row %d col %d: %v", ErrUnreadableSource, r, c, err)
			}
			row[c] = s
		}
		rows[r] = row
	}
	return pattern.NewGrid(rows)
}
