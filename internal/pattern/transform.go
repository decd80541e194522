package pattern

import "fmt"

// Transform names one of the 8 elements of the dihedral group D4: the four
// clockwise rotations, and the same four applied after a horizontal mirror.
// The constant order is the canonical enumeration order used by the matcher.
type Transform int

const (
	Identity Transform = iota
	Rotate90
	Rotate180
	Rotate270
	FlipH
	FlipHRotate90
	FlipHRotate180
	FlipHRotate270

	// NumTransforms is the size of the transform group.
	NumTransforms = 8
)

var transformNames = [NumTransforms]string{
	"Identity",
	"Rotate90",
	"Rotate180",
	"Rotate270",
	"FlipH",
	"FlipH+Rotate90",
	"FlipH+Rotate180",
	"FlipH+Rotate270",
}

// String returns the canonical transform name.
func (t Transform) String() string {
	if t < 0 || t >= NumTransforms {
		return fmt.Sprintf("Transform(%d)", int(t))
	}
	return transformNames[t]
}

// Rotate90Clockwise rotates a grid 90 degrees clockwise. An HxW input yields a
// WxH output with out(c, H-1-r) = in(r, c).
func Rotate90Clockwise(g Grid) Grid {
	rotated := Grid{
		cells:  make([]Symbol, len(g.cells)),
		height: g.width,
		width:  g.height,
	}
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			rotated.cells[c*rotated.width+(g.height-1-r)] = g.cells[r*g.width+c]
		}
	}
	return rotated
}

// FlipHorizontal mirrors a grid left-to-right: each row is reversed,
// dimensions are unchanged.
func FlipHorizontal(g Grid) Grid {
	flipped := Grid{
		cells:  make([]Symbol, len(g.cells)),
		height: g.height,
		width:  g.width,
	}
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			flipped.cells[r*g.width+(g.width-1-c)] = g.cells[r*g.width+c]
		}
	}
	return flipped
}

// FlipVertical mirrors a grid top-to-bottom: row order is reversed,
// dimensions are unchanged. The canonical 8-sequence is generated from
// Rotate90Clockwise and FlipHorizontal alone; FlipVertical exists because
// vertical mirroring is part of the group and useful on its own.
func FlipVertical(g Grid) Grid {
	flipped := Grid{
		cells:  make([]Symbol, len(g.cells)),
		height: g.height,
		width:  g.width,
	}
	for r := 0; r < g.height; r++ {
		copy(flipped.cells[(g.height-1-r)*g.width:(g.height-r)*g.width],
			g.cells[r*g.width:(r+1)*g.width])
	}
	return flipped
}

// Apply returns t applied to g.
func (t Transform) Apply(g Grid) Grid {
	out := g
	if t >= FlipH {
		out = FlipHorizontal(out)
	}
	for i := 0; i < int(t)%4; i++ {
		out = Rotate90Clockwise(out)
	}
	return out
}

// AllTransforms returns the 8 dihedral transforms of g in canonical order:
// the grid itself followed by three successive clockwise rotations (each
// rotation applied to the previous result), then the horizontal mirror of g
// followed by its three successive rotations. Calling it twice on equal
// inputs yields element-wise equal sequences.
func AllTransforms(g Grid) []Grid {
	out := make([]Grid, 0, NumTransforms)
	current := g
	for i := 0; i < 4; i++ {
		out = append(out, current)
		current = Rotate90Clockwise(current)
	}
	current = FlipHorizontal(g)
	for i := 0; i < 4; i++ {
		out = append(out, current)
		current = Rotate90Clockwise(current)
	}
	return out
}
