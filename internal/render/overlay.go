package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dotgrid/pattern-tools/internal/detect"
)

var (
	contourColor  = color.RGBA{G: 255, A: 255}
	centroidColor = color.RGBA{R: 255, A: 255}
	gridLineColor = color.RGBA{R: 210, G: 210, B: 210, A: 255}
	bannerColor   = color.RGBA{B: 255, A: 255}
)

// Overlay draws detection results over a copy of the source image: each
// dot's bounding box outlined in green, its centroid marked in red, and a
// banner with the detected dot count.
func Overlay(img image.Image, dots []detect.Dot) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)

	for _, d := range dots {
		drawRect(out, d.Bounds.Inset(-1), contourColor)
		cx := int(math.Round(d.CenterX)) + img.Bounds().Min.X
		cy := int(math.Round(d.CenterY)) + img.Bounds().Min.Y
		fillCircle(out, cx, cy, 2, centroidColor)
	}

	drawBanner(out, fmt.Sprintf("Detected: %d dots", len(dots)))
	return out
}

// Plot renders detected dots the way the inspection plots do: light grid
// lines through every unique rounded dot coordinate, plus a filled marker
// per dot in its direction color (black for unclassified dots).
func Plot(width, height int, dots []detect.Dot) *image.RGBA {
	img := whitePage(width, height)

	xs := uniqueRounded(dots, func(d detect.Dot) float64 { return d.CenterX })
	ys := uniqueRounded(dots, func(d detect.Dot) float64 { return d.CenterY })

	for _, x := range xs {
		drawVLine(img, clamp(x, 0, width-1), gridLineColor)
	}
	for _, y := range ys {
		drawHLine(img, clamp(y, 0, height-1), gridLineColor)
	}

	for _, d := range dots {
		marker, ok := detect.MarkerColor(d.Symbol)
		if !ok {
			marker = color.RGBA{A: 255}
		}
		x := clamp(int(math.Round(d.CenterX)), 0, width-1)
		y := clamp(int(math.Round(d.CenterY)), 0, height-1)
		fillCircle(img, x, y, 4, marker)
	}
	return img
}

func uniqueRounded(dots []detect.Dot, coord func(detect.Dot) float64) []int {
	vals := make([]int, 0, len(dots))
	for _, d := range dots {
		vals = append(vals, int(math.Round(coord(d))))
	}
	sort.Ints(vals)
	out := vals[:0]
	for i, v := range vals {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// drawBanner writes a short status line in the top-left corner.
func drawBanner(img *image.RGBA, text string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(bannerColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(img.Bounds().Min.X+10, img.Bounds().Min.Y+20),
	}
	d.DrawString(text)
}

func drawRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}

func drawVLine(img *image.RGBA, x int, c color.RGBA) {
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		img.SetRGBA(x, y, c)
	}
}

func drawHLine(img *image.RGBA, y int, c color.RGBA) {
	for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
		img.SetRGBA(x, y, c)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
