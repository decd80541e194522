package verify

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dotgrid/pattern-tools/internal/gridio"
	"github.com/dotgrid/pattern-tools/internal/pattern"
)

// Options controls report rendering.
type Options struct {
	// ShowPattern prints the transformed reference grid for matches found
	// under a non-identity transform.
	ShowPattern bool
}

// Summary aggregates a batch run.
type Summary struct {
	// Processed is the number of candidate files examined.
	Processed int

	// Found and NotFound count candidates with and without a match.
	Found    int
	NotFound int

	// Failed counts candidates that could not be loaded or parsed.
	Failed int

	// MissingIDs lists the identifiers of candidates without a match, in
	// processing order.
	MissingIDs []string
}

// Clean reports whether every candidate was processed and matched.
func (s Summary) Clean() bool {
	return s.NotFound == 0 && s.Failed == 0
}

// Discover returns the candidate files under dir whose base name matches
// glob, sorted lexicographically for reproducible batch output.
func Discover(dir, glob string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, glob))
	if err != nil {
		return nil, fmt.Errorf("bad candidate glob %q: %w", glob, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// CandidateID extracts the identifier embedded in a candidate filename: the
// second underscore-separated token of the base name without extension
// (page_07_minified.json -> "07"). Files without underscores use the whole
// stem.
func CandidateID(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	parts := strings.Split(stem, "_")
	if len(parts) >= 2 {
		return parts[1]
	}
	return stem
}

// Run checks every candidate file for the reference pattern and writes the
// report to w. Load and shape failures are per-file: they are reported,
// counted, and the batch continues.
func Run(w io.Writer, reference pattern.Grid, paths []string, opts Options) Summary {
	printHeader(w, reference)

	var summary Summary
	for _, path := range paths {
		summary.Processed++
		id := CandidateID(path)

		candidate, err := gridio.LoadGrid(path)
		if err == nil {
			var res pattern.MatchResult
			res, err = pattern.FindPattern(candidate, reference)
			if err == nil {
				reportResult(w, path, id, candidate, res, opts)
				if res.Found {
					summary.Found++
				} else {
					summary.NotFound++
					summary.MissingIDs = append(summary.MissingIDs, id)
				}
				continue
			}
		}

		summary.Failed++
		summary.MissingIDs = append(summary.MissingIDs, id)
		fmt.Fprintf(w, "\n✗ Candidate %s: FAILED\n", id)
		fmt.Fprintf(w, "  File: %s\n", path)
		fmt.Fprintf(w, "  Error: %v\n", err)
	}

	printSummary(w, summary)
	return summary
}

func printHeader(w io.Writer, reference pattern.Grid) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintln(w, "Verifying reference pattern in candidate grids...")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "\nReference pattern (%dx%d):\n", reference.Height(), reference.Width())
	for _, row := range reference.GlyphRows() {
		fmt.Fprintf(w, "  %s\n", row)
	}
	fmt.Fprintf(w, "\n%s\n", rule)
}

func reportResult(w io.Writer, path, id string, candidate pattern.Grid, res pattern.MatchResult, opts Options) {
	if !res.Found {
		fmt.Fprintf(w, "\n✗ Candidate %s: NOT FOUND\n", id)
		fmt.Fprintf(w, "  File: %s\n", path)
		fmt.Fprintf(w, "  Grid size: %dx%d\n", candidate.Height(), candidate.Width())
		return
	}

	fmt.Fprintf(w, "\n✓ Candidate %s: FOUND at position (row=%d, col=%d)\n", id, res.Row, res.Col)
	fmt.Fprintf(w, "  File: %s\n", path)
	fmt.Fprintf(w, "  Transform: %s\n", res.Transform)
	if opts.ShowPattern && res.Transform != pattern.Identity {
		fmt.Fprintln(w, "  Transformed pattern:")
		for _, row := range res.Pattern.GlyphRows() {
			fmt.Fprintf(w, "    %s\n", row)
		}
	}
}

func printSummary(w io.Writer, s Summary) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(w, "\nSummary:")
	fmt.Fprintf(w, "  Total candidates processed: %d\n", s.Processed)
	fmt.Fprintf(w, "  Patterns found: %d\n", s.Found)
	fmt.Fprintf(w, "  Patterns not found: %d\n", s.NotFound)
	if s.Failed > 0 {
		fmt.Fprintf(w, "  Failures: %d\n", s.Failed)
	}
	if len(s.MissingIDs) > 0 {
		fmt.Fprintf(w, "\n  Candidates without pattern: %s\n", strings.Join(s.MissingIDs, ", "))
	} else {
		fmt.Fprintln(w, "\n  ✓ All candidates contain the reference pattern!")
	}
}
