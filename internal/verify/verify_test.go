package verify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dotgrid/pattern-tools/internal/gridio"
	"github.com/dotgrid/pattern-tools/internal/pattern"
)

func testReference(t *testing.T) pattern.Grid {
	t.Helper()
	u, d, l, r := pattern.Up, pattern.Down, pattern.Left, pattern.Right
	return pattern.MustGrid([][]pattern.Symbol{
		{u, d, l},
		{r, u, d},
	})
}

// embed builds an h x w candidate filled with Right and the source grid
// placed at (row, col).
func embed(t *testing.T, src pattern.Grid, h, w, row, col int) pattern.Grid {
	t.Helper()
	rows := make([][]pattern.Symbol, h)
	for r := range rows {
		rows[r] = make([]pattern.Symbol, w)
		for c := range rows[r] {
			rows[r][c] = pattern.Right
		}
	}
	for r := 0; r < src.Height(); r++ {
		for c := 0; c < src.Width(); c++ {
			rows[row+r][col+c] = src.At(r, c)
		}
	}
	return pattern.MustGrid(rows)
}

func writeGrid(t *testing.T, dir, name string, g pattern.Grid) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := gridio.SaveGrid(path, g); err != nil {
		t.Fatalf("SaveGrid(%s) failed: %v", name, err)
	}
	return path
}

func TestCandidateID(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"out/page_07_minified.json", "07"},
		{"page_3.json", "3"},
		{"grid.json", "grid"},
		{"a_b_c_d.json", "b"},
	}
	for _, tc := range cases {
		if got := CandidateID(tc.path); got != tc.want {
			t.Errorf("CandidateID(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestDiscover_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	ref := testReference(t)
	writeGrid(t, dir, "page_02_minified.json", ref)
	writeGrid(t, dir, "page_01_minified.json", ref)
	writeGrid(t, dir, "notes.json", ref)

	paths, err := Discover(dir, "*_minified.json")
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2: %v", len(paths), paths)
	}
	if filepath.Base(paths[0]) != "page_01_minified.json" ||
		filepath.Base(paths[1]) != "page_02_minified.json" {
		t.Errorf("paths not sorted: %v", paths)
	}
}

func TestRun_MixedBatch(t *testing.T) {
	dir := t.TempDir()
	ref := testReference(t)

	found := writeGrid(t, dir, "page_01_minified.json", embed(t, ref, 8, 9, 3, 2))
	rotated := writeGrid(t, dir, "page_02_minified.json",
		embed(t, pattern.Rotate90.Apply(ref), 8, 9, 1, 1))
	missing := writeGrid(t, dir, "page_03_minified.json",
		pattern.MustGrid([][]pattern.Symbol{
			{pattern.Up, pattern.Up},
			{pattern.Up, pattern.Up},
		}))

	broken := filepath.Join(dir, "page_04_minified.json")
	if err := os.WriteFile(broken, []byte("not json"), 0o644); err != nil {
		t.Fatalf("writing broken candidate: %v", err)
	}

	var out strings.Builder
	summary := Run(&out, ref, []string{found, rotated, missing, broken}, Options{ShowPattern: true})

	if summary.Processed != 4 || summary.Found != 2 || summary.NotFound != 1 || summary.Failed != 1 {
		t.Errorf("summary = %+v, want 4 processed, 2 found, 1 not found, 1 failed", summary)
	}
	if len(summary.MissingIDs) != 2 || summary.MissingIDs[0] != "03" || summary.MissingIDs[1] != "04" {
		t.Errorf("MissingIDs = %v, want [03 04]", summary.MissingIDs)
	}
	if summary.Clean() {
		t.Error("Clean() true for a batch with misses and failures")
	}

	report := out.String()
	for _, want := range []string{
		"✓ Candidate 01: FOUND at position (row=3, col=2)",
		"Transform: Identity",
		"✓ Candidate 02: FOUND at position (row=1, col=1)",
		"Transform: Rotate90",
		"Transformed pattern:",
		"✗ Candidate 03: NOT FOUND",
		"✗ Candidate 04: FAILED",
		"Total candidates processed: 4",
		"Candidates without pattern: 03, 04",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q\n---\n%s", want, report)
		}
	}
}

func TestRun_AllFound(t *testing.T) {
	dir := t.TempDir()
	ref := testReference(t)
	path := writeGrid(t, dir, "page_01_minified.json", embed(t, ref, 5, 6, 0, 0))

	var out strings.Builder
	summary := Run(&out, ref, []string{path}, Options{})

	if !summary.Clean() {
		t.Errorf("summary = %+v, want clean", summary)
	}
	if !strings.Contains(out.String(), "All candidates contain the reference pattern!") {
		t.Errorf("report missing all-found line:\n%s", out.String())
	}
}
