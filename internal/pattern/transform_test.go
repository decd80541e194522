package pattern

import "testing"

func TestRotate90Clockwise(t *testing.T) {
	// 2x3 input rotates to 3x2 with out(c, H-1-r) = in(r, c).
	g := gridFromGlyphs(t,
		"↑↓←",
		"→↑↓",
	)
	got := Rotate90Clockwise(g)
	want := gridFromGlyphs(t,
		"→↑",
		"↑↓",
		"↓←",
	)
	if !got.Equal(want) {
		t.Errorf("Rotate90Clockwise:\ngot %v\nwant %v", got, want)
	}
}

func TestRotate90Clockwise_DimensionLaw(t *testing.T) {
	g := gridFromGlyphs(t, "↑↓←↓", "→↑↑←", "↓↓→↓")
	r := Rotate90Clockwise(g)
	if r.Height() != g.Width() || r.Width() != g.Height() {
		t.Errorf("rotated dimensions: got %dx%d, want %dx%d",
			r.Height(), r.Width(), g.Width(), g.Height())
	}
}

func TestFlipHorizontal(t *testing.T) {
	g := gridFromGlyphs(t,
		"↑↓←",
		"→↑↓",
	)
	got := FlipHorizontal(g)
	want := gridFromGlyphs(t,
		"←↓↑",
		"↓↑→",
	)
	if !got.Equal(want) {
		t.Errorf("FlipHorizontal:\ngot %v\nwant %v", got, want)
	}
	if got.Height() != g.Height() || got.Width() != g.Width() {
		t.Error("FlipHorizontal changed dimensions")
	}
}

func TestFlipVertical(t *testing.T) {
	g := gridFromGlyphs(t,
		"↑↓←",
		"→↑↓",
	)
	got := FlipVertical(g)
	want := gridFromGlyphs(t,
		"→↑↓",
		"↑↓←",
	)
	if !got.Equal(want) {
		t.Errorf("FlipVertical:\ngot %v\nwant %v", got, want)
	}
}

func TestRoundTripLaws(t *testing.T) {
	g := gridFromGlyphs(t,
		"↑↓←↓↓",
		"→↑↑←↑",
		"↓↓→↓↑",
	)

	r := g
	for i := 0; i < 4; i++ {
		r = Rotate90Clockwise(r)
	}
	if !r.Equal(g) {
		t.Error("four 90-degree rotations did not reproduce the original")
	}

	if !FlipHorizontal(FlipHorizontal(g)).Equal(g) {
		t.Error("double horizontal flip did not reproduce the original")
	}
	if !FlipVertical(FlipVertical(g)).Equal(g) {
		t.Error("double vertical flip did not reproduce the original")
	}
}

func TestAllTransforms_CanonicalOrder(t *testing.T) {
	g := gridFromGlyphs(t,
		"↑↓",
		"←→",
		"↓↑",
	)

	got := AllTransforms(g)
	if len(got) != NumTransforms {
		t.Fatalf("got %d transforms, want %d", len(got), NumTransforms)
	}

	f := FlipHorizontal(g)
	want := []Grid{
		g,
		Rotate90Clockwise(g),
		Rotate90Clockwise(Rotate90Clockwise(g)),
		Rotate90Clockwise(Rotate90Clockwise(Rotate90Clockwise(g))),
		f,
		Rotate90Clockwise(f),
		Rotate90Clockwise(Rotate90Clockwise(f)),
		Rotate90Clockwise(Rotate90Clockwise(Rotate90Clockwise(f))),
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("transform %d (%v) differs from expected chain element", i, Transform(i))
		}
	}
}

func TestAllTransforms_Deterministic(t *testing.T) {
	g := gridFromGlyphs(t, "↑↓←", "→↑↓")
	first := AllTransforms(g)
	second := AllTransforms(g)
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("transform %d differs between invocations", i)
		}
	}
}

func TestTransformApply(t *testing.T) {
	g := gridFromGlyphs(t, "↑↓←", "→↑↓")
	all := AllTransforms(g)
	for i := 0; i < NumTransforms; i++ {
		tr := Transform(i)
		if got := tr.Apply(g); !got.Equal(all[i]) {
			t.Errorf("%v.Apply does not match AllTransforms element %d", tr, i)
		}
	}
}

func TestTransformString(t *testing.T) {
	tests := []struct {
		tr   Transform
		want string
	}{
		{Identity, "Identity"},
		{Rotate90, "Rotate90"},
		{Rotate180, "Rotate180"},
		{Rotate270, "Rotate270"},
		{FlipH, "FlipH"},
		{FlipHRotate90, "FlipH+Rotate90"},
		{FlipHRotate180, "FlipH+Rotate180"},
		{FlipHRotate270, "FlipH+Rotate270"},
	}
	for _, tt := range tests {
		if got := tt.tr.String(); got != tt.want {
			t.Errorf("Transform(%d).String() = %q, want %q", int(tt.tr), got, tt.want)
		}
	}
}
