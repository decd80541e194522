package detect

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"

	"github.com/dotgrid/pattern-tools/internal/minify"
	"github.com/dotgrid/pattern-tools/internal/pattern"
)

// Options controls the detection pipeline.
type Options struct {
	// Threshold is the binarization level (0-255). Pixels darker than this
	// after grayscale conversion count as dot ink.
	Threshold uint8

	// MinArea is the minimum component size in pixels; smaller components
	// are discarded as noise.
	MinArea int
}

// DefaultOptions returns the parameters the original inspection tooling
// shipped with: threshold 127, minimum dot area 5.
func DefaultOptions() Options {
	return Options{Threshold: 127, MinArea: 5}
}

// Dot is one detected dot: a connected component of dark pixels with its
// centroid, extent, and the direction classified from its marker color.
type Dot struct {
	// CenterX and CenterY are the centroid in pixel coordinates, computed
	// from the component's first moments.
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`

	// Area is the component size in pixels.
	Area int `json:"area"`

	// Bounds is the component's bounding box.
	Bounds image.Rectangle `json:"-"`

	// Symbol is the direction decoded from the dot's marker color, or
	// Empty for plain dots and unrecognized colors.
	Symbol pattern.Symbol `json:"symbol"`
}

// Dots runs the detection pipeline over img and returns the detected dots in
// row-major discovery order (deterministic for a given image and options).
func Dots(img image.Image, opts Options) ([]Dot, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image")
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, nil
	}

	gray := effect.Grayscale(img)
	binary := segment.Threshold(gray, opts.Threshold)

	// Foreground mask: dots are darker than the threshold, which Threshold
	// maps to black. Threshold keeps the source bounds, so reads must be
	// offset by bounds.Min; the mask itself stays origin-relative.
	mask := make([][]bool, height)
	for y := 0; y < height; y++ {
		mask[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			mask[y][x] = binary.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y == 0
		}
	}

	var dots []Dot
	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask[y][x] || visited[y][x] {
				continue
			}
			component := collectComponent(mask, visited, x, y, width, height)
			if len(component) < opts.MinArea {
				continue
			}
			dots = append(dots, summarize(img, component))
		}
	}
	return dots, nil
}

// collectComponent gathers the 8-connected component containing (startX,
// startY) with an iterative stack-based flood fill, marking visited pixels.
func collectComponent(mask, visited [][]bool, startX, startY, width, height int) []image.Point {
	var component []image.Point
	stack := []image.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y][p.X] || !mask[p.Y][p.X] {
			continue
		}

		visited[p.Y][p.X] = true
		component = append(component, p)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return component
}

// summarize computes a component's centroid, bounds, and classified symbol.
func summarize(img image.Image, component []image.Point) Dot {
	origin := img.Bounds().Min
	sumX, sumY := 0, 0
	box := image.Rectangle{
		Min: component[0],
		Max: component[0].Add(image.Point{X: 1, Y: 1}),
	}
	for _, p := range component {
		sumX += p.X
		sumY += p.Y
		if p.X < box.Min.X {
			box.Min.X = p.X
		}
		if p.Y < box.Min.Y {
			box.Min.Y = p.Y
		}
		if p.X+1 > box.Max.X {
			box.Max.X = p.X + 1
		}
		if p.Y+1 > box.Max.Y {
			box.Max.Y = p.Y + 1
		}
	}

	n := float64(len(component))
	return Dot{
		CenterX: float64(sumX) / n,
		CenterY: float64(sumY) / n,
		Area:    len(component),
		Bounds:  box.Add(origin),
		Symbol:  classifyComponent(img, component),
	}
}

// ToReadings converts detected dots into minify intersection readings.
func ToReadings(dots []Dot) []minify.Reading {
	readings := make([]minify.Reading, len(dots))
	for i, d := range dots {
		readings[i] = minify.Reading{X: d.CenterX, Y: d.CenterY, Symbol: d.Symbol}
	}
	return readings
}

// GridFromImage runs the full extraction: detect dots, assemble the
// intersection grid from their centers, and minify it into the symbol grid
// the matcher consumes. The detected dots are returned alongside the grid so
// callers can render overlays without re-running detection.
func GridFromImage(img image.Image, opts Options) (pattern.Grid, []Dot, error) {
	dots, err := Dots(img, opts)
	if err != nil {
		return pattern.Grid{}, nil, err
	}
	full, err := minify.FromIntersections(ToReadings(dots))
	if err != nil {
		return pattern.Grid{}, dots, fmt.Errorf("failed to build intersection grid: %w", err)
	}
	grid, err := minify.Minify(full)
	if err != nil {
		return pattern.Grid{}, dots, fmt.Errorf("failed to minify grid: %w", err)
	}
	return grid, dots, nil
}
