package pattern

import "testing"

func TestSymbolGlyphRoundTrip(t *testing.T) {
	for _, s := range []Symbol{Up, Down, Left, Right, Empty} {
		parsed, err := ParseSymbol(s.Glyph())
		if err != nil {
			t.Fatalf("ParseSymbol(%q) failed: %v", s.Glyph(), err)
		}
		if parsed != s {
			t.Errorf("round trip of %v: got %v", s, parsed)
		}
	}
}

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		cell    string
		want    Symbol
		wantErr bool
	}{
		{"↑", Up, false},
		{"↓", Down, false},
		{"←", Left, false},
		{"→", Right, false},
		{" ", Empty, false},
		{"", Empty, false},
		{"x", Empty, true},
		{"↑↑", Empty, true},
	}

	for _, tt := range tests {
		got, err := ParseSymbol(tt.cell)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSymbol(%q): expected error, got %v", tt.cell, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSymbol(%q): unexpected error: %v", tt.cell, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSymbol(%q): got %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestSymbolIsArrow(t *testing.T) {
	for _, s := range []Symbol{Up, Down, Left, Right} {
		if !s.IsArrow() {
			t.Errorf("%v.IsArrow() = false, want true", s)
		}
	}
	if Empty.IsArrow() {
		t.Error("Empty.IsArrow() = true, want false")
	}
}
