package render

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"

	"github.com/disintegration/imaging"

	"github.com/dotgrid/pattern-tools/internal/detect"
	"github.com/dotgrid/pattern-tools/internal/pattern"
)

// SampleOptions controls synthetic page generation.
type SampleOptions struct {
	// Spacing is the lattice pitch in pixels between neighboring dots.
	Spacing int

	// DotRadius is each dot's radius in pixels.
	DotRadius int

	// Margin is the blank border around the lattice in pixels.
	Margin int

	// Jitter displaces each dot randomly by up to Jitter*Spacing in both
	// axes, simulating print and scan noise. 0 disables it.
	Jitter float64

	// Seed makes jitter reproducible.
	Seed int64
}

// DefaultSampleOptions matches the original sample generator: 20 px pitch,
// 2 px dots, no jitter.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{Spacing: 20, DotRadius: 2, Margin: 20}
}

// Lattice renders a plain dot-paper page: a regular lattice of black dots
// with optional positional jitter, on a white background.
func Lattice(width, height int, opts SampleOptions) *image.RGBA {
	img := whitePage(width, height)
	rng := rand.New(rand.NewSource(opts.Seed))

	for y := opts.Margin; y < height-opts.Margin; y += opts.Spacing {
		for x := opts.Margin; x < width-opts.Margin; x += opts.Spacing {
			dx, dy := jitter(rng, opts)
			fillCircle(img, x+dx, y+dy, opts.DotRadius, color.RGBA{A: 255})
		}
	}
	return img
}

// Sample renders a page carrying the given symbol grid: one dot per grid
// cell at the cell's lattice intersection, colored with the direction's
// marker color. Empty cells produce no dot, so detection reads them back as
// missing intersections.
func Sample(grid pattern.Grid, opts SampleOptions) *image.RGBA {
	width := 2*opts.Margin + (grid.Width()-1)*opts.Spacing + 1
	height := 2*opts.Margin + (grid.Height()-1)*opts.Spacing + 1
	img := whitePage(width, height)
	rng := rand.New(rand.NewSource(opts.Seed))

	for r := 0; r < grid.Height(); r++ {
		for c := 0; c < grid.Width(); c++ {
			marker, ok := detect.MarkerColor(grid.At(r, c))
			if !ok {
				continue
			}
			dx, dy := jitter(rng, opts)
			cx := opts.Margin + c*opts.Spacing + dx
			cy := opts.Margin + r*opts.Spacing + dy
			fillCircle(img, cx, cy, opts.DotRadius, marker)
		}
	}
	return img
}

// SavePNG writes img to path. The format follows the file extension, so
// despite the name any extension imaging understands works.
func SavePNG(path string, img image.Image) error {
	return imaging.Save(img, path)
}

func whitePage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func jitter(rng *rand.Rand, opts SampleOptions) (int, int) {
	if opts.Jitter <= 0 {
		return 0, 0
	}
	limit := opts.Jitter * float64(opts.Spacing)
	return int((rng.Float64()*2 - 1) * limit), int((rng.Float64()*2 - 1) * limit)
}

func fillCircle(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	bounds := img.Bounds()
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			x, y := cx+dx, cy+dy
			if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
