package detect

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dotgrid/pattern-tools/internal/pattern"
)

// Marker colors for the four directions as printed on sample pages and
// overlays: green=Up, orange=Down, blue=Left, magenta=Right.
var markerPalette = map[pattern.Symbol]color.RGBA{
	pattern.Up:    {R: 0, G: 166, B: 64, A: 255},
	pattern.Down:  {R: 204, G: 102, B: 0, A: 255},
	pattern.Left:  {R: 26, G: 89, B: 204, A: 255},
	pattern.Right: {R: 204, G: 26, B: 166, A: 255},
}

// MarkerColor returns the printed marker color for a direction. The second
// return is false for Empty and invalid symbols, which have no marker.
func MarkerColor(s pattern.Symbol) (color.RGBA, bool) {
	c, ok := markerPalette[s]
	return c, ok
}

// maxMarkerDistance is the Lab distance beyond which a dot color is not
// accepted as any marker. Lab distances around 0.3 separate the four marker
// hues comfortably while rejecting grays and paper noise.
const maxMarkerDistance = 0.35

// classifyComponent averages the component's color in the source image and
// maps it to a direction. Near-black and unsaturated dots are plain lattice
// dots with no direction marker and classify as Empty.
func classifyComponent(img image.Image, component []image.Point) pattern.Symbol {
	offset := img.Bounds().Min

	var sumR, sumG, sumB float64
	for _, p := range component {
		r, g, b, _ := img.At(p.X+offset.X, p.Y+offset.Y).RGBA()
		sumR += float64(r) / 0xffff
		sumG += float64(g) / 0xffff
		sumB += float64(b) / 0xffff
	}
	n := float64(len(component))
	avg := colorful.Color{R: sumR / n, G: sumG / n, B: sumB / n}

	// Plain dots are black ink; grays carry no hue information either way.
	_, sat, val := avg.Hsv()
	if val < 0.2 || sat < 0.25 {
		return pattern.Empty
	}

	best := pattern.Empty
	bestDist := maxMarkerDistance
	for symbol, marker := range markerPalette {
		anchor, ok := colorful.MakeColor(marker)
		if !ok {
			continue
		}
		if d := avg.DistanceLab(anchor); d < bestDist {
			best, bestDist = symbol, d
		}
	}
	return best
}
