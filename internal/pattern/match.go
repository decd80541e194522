package pattern

import "fmt"

// MatchResult reports the outcome of a pattern search. When Found is false
// the remaining fields are zero values. Not finding the pattern is an
// ordinary result, not an error.
type MatchResult struct {
	// Found reports whether the pattern occurs in the candidate under any
	// of the 8 dihedral transforms.
	Found bool `json:"found"`

	// Row and Col are the 0-based offset of the transformed pattern's
	// top-left cell inside the candidate grid.
	Row int `json:"row"`
	Col int `json:"col"`

	// Transform is the dihedral transform under which the pattern matched.
	Transform Transform `json:"transform"`

	// Pattern is the transformed reference grid exactly as it matched, so
	// callers can display it without recomputing the transform.
	Pattern Grid `json:"-"`
}

// FindPattern searches candidate for reference under all 8 dihedral
// transforms and returns the first match in canonical enumeration order:
// transform index ascending (outermost), then row ascending, then column
// ascending. A match under Identity anywhere in the candidate therefore
// always beats a match under any later transform, regardless of position.
//
// Rotated transforms swap the reference's dimensions; transforms that do not
// fit inside the candidate are skipped. A window matches only when every
// candidate cell equals the corresponding pattern cell and is not Empty:
// Empty means "unreadable" and never satisfies any pattern cell.
//
// Both grids must be non-zero; zero-value grids are a precondition violation
// reported via ErrMalformedGrid before any comparison work begins.
func FindPattern(candidate, reference Grid) (MatchResult, error) {
	if candidate.IsZero() {
		return MatchResult{}, fmt.Errorf("candidate: %w: empty grid", ErrMalformedGrid)
	}
	if reference.IsZero() {
		return MatchResult{}, fmt.Errorf("reference: %w: empty grid", ErrMalformedGrid)
	}

	for idx, transformed := range AllTransforms(reference) {
		th, tw := transformed.Height(), transformed.Width()
		if th > candidate.Height() || tw > candidate.Width() {
			continue
		}
		for row := 0; row <= candidate.Height()-th; row++ {
			for col := 0; col <= candidate.Width()-tw; col++ {
				if windowMatches(candidate, transformed, row, col) {
					return MatchResult{
						Found:     true,
						Row:       row,
						Col:       col,
						Transform: Transform(idx),
						Pattern:   transformed,
					}, nil
				}
			}
		}
	}
	return MatchResult{}, nil
}

// windowMatches tests cell-by-cell equality of the pattern against the
// candidate window anchored at (row, col). Candidate Empty cells always fail.
func windowMatches(candidate, transformed Grid, row, col int) bool {
	for pr := 0; pr < transformed.height; pr++ {
		cBase := (row+pr)*candidate.width + col
		pBase := pr * transformed.width
		for pc := 0; pc < transformed.width; pc++ {
			got := candidate.cells[cBase+pc]
			if got == Empty || got != transformed.cells[pBase+pc] {
				return false
			}
		}
	}
	return true
}
