package pattern

import "fmt"

// Symbol is the decoded reading of one analysis cell: the direction a dot is
// displaced from its nominal lattice position, or Empty when the cell has no
// reliable reading.
type Symbol uint8

const (
	// Empty means no reliable reading at this cell. It is the zero value on
	// purpose: a freshly allocated grid is all-unknown.
	Empty Symbol = iota
	Up
	Down
	Left
	Right
)

// Glyph returns the single-character display form used in the persisted grid
// representation: the four directional arrows, and a space for Empty.
func (s Symbol) Glyph() string {
	switch s {
	case Up:
		return "↑"
	case Down:
		return "↓"
	case Left:
		return "←"
	case Right:
		return "→"
	default:
		return " "
	}
}

// String implements fmt.Stringer with readable names for diagnostics.
func (s Symbol) String() string {
	switch s {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Empty:
		return "Empty"
	default:
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
}

// IsArrow reports whether s is one of the four directional readings.
func (s Symbol) IsArrow() bool {
	return s == Up || s == Down || s == Left || s == Right
}

// ParseSymbol maps a one-glyph cell string to its Symbol. A single space (or
// the empty string) maps to Empty. Any other content is an error.
func ParseSymbol(cell string) (Symbol, error) {
	switch cell {
	case "↑":
		return Up, nil
	case "↓":
		return Down, nil
	case "←":
		return Left, nil
	case "→":
		return Right, nil
	case " ", "":
		return Empty, nil
	default:
		return Empty, fmt.Errorf("unrecognized cell glyph %q", cell)
	}
}
