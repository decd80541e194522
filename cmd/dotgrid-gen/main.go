package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/dotgrid/pattern-tools/internal/gridio"
	"github.com/dotgrid/pattern-tools/internal/render"
)

func main() {
	gridPath := flag.String("grid", "", "Grid JSON to render; omit for a plain lattice page")
	width := flag.Int("width", 800, "Page width in pixels (plain lattice only)")
	height := flag.Int("height", 600, "Page height in pixels (plain lattice only)")
	spacing := flag.Int("spacing", 20, "Lattice pitch in pixels")
	dotRadius := flag.Int("dot-radius", 2, "Dot radius in pixels")
	margin := flag.Int("margin", 20, "Blank border in pixels")
	jitter := flag.Float64("jitter", 0, "Random dot displacement as a fraction of spacing")
	seed := flag.Int64("seed", 0, "Seed for reproducible jitter")
	output := flag.String("out", "sample.png", "Output image path")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	opts := render.SampleOptions{
		Spacing:   *spacing,
		DotRadius: *dotRadius,
		Margin:    *margin,
		Jitter:    *jitter,
		Seed:      *seed,
	}

	page, err := buildPage(*gridPath, *width, *height, opts)
	if err != nil {
		log.Fatalf("Failed to build page: %v", err)
	}

	if err := render.SavePNG(*output, page); err != nil {
		log.Fatalf("Failed to save page: %v", err)
	}
	bounds := page.Bounds()
	log.Printf("Wrote %dx%d page to %s", bounds.Dx(), bounds.Dy(), *output)
}

// buildPage renders the grid at gridPath as a sample page, or a plain lattice
// of the given size when no grid is supplied.
func buildPage(gridPath string, width, height int, opts render.SampleOptions) (*image.RGBA, error) {
	if gridPath == "" {
		return render.Lattice(width, height, opts), nil
	}
	grid, err := gridio.LoadGrid(gridPath)
	if err != nil {
		return nil, err
	}
	return render.Sample(grid, opts), nil
}
