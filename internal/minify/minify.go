package minify

import (
	"errors"
	"math"
	"sort"

	"github.com/dotgrid/pattern-tools/internal/pattern"
)

// ErrNoArrows is returned when a grid contains no directional readings at
// all, so there is nothing to minify.
var ErrNoArrows = errors.New("grid contains no directional readings")

// Reading is one classified dot center in page coordinates, the input to
// FromIntersections.
type Reading struct {
	X      float64
	Y      float64
	Symbol pattern.Symbol
}

// FromIntersections builds the full intersection grid from classified dot
// centers: the sorted unique rounded X coordinates define the columns and the
// sorted unique rounded Y coordinates the rows. When two readings round to
// the same intersection the first non-Empty one wins, keeping the result
// stable under input order.
func FromIntersections(readings []Reading) (pattern.Grid, error) {
	if len(readings) == 0 {
		return pattern.Grid{}, ErrNoArrows
	}

	xs := uniqueSorted(readings, func(r Reading) float64 { return r.X })
	ys := uniqueSorted(readings, func(r Reading) float64 { return r.Y })

	rows := make([][]pattern.Symbol, len(ys))
	for i := range rows {
		rows[i] = make([]pattern.Symbol, len(xs))
	}

	for _, rd := range readings {
		if !rd.Symbol.IsArrow() {
			continue
		}
		c := sort.SearchInts(xs, int(math.Round(rd.X)))
		r := sort.SearchInts(ys, int(math.Round(rd.Y)))
		if rows[r][c] == pattern.Empty {
			rows[r][c] = rd.Symbol
		}
	}

	return pattern.NewGrid(rows)
}

func uniqueSorted(readings []Reading, coord func(Reading) float64) []int {
	vals := make([]int, 0, len(readings))
	for _, r := range readings {
		vals = append(vals, int(math.Round(coord(r))))
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

// Minify collapses a full intersection grid into the minified symbol grid.
//
// The detected region is cropped to bounds that stay aligned with the 3x3
// symbol phase even when a whole border row or column of readings is missing,
// the crop is padded up to a multiple of 3, and each 3x3 block becomes one
// output cell holding the majority arrow of the block (Empty when the block
// holds no arrows at all; missing blocks are never filled with a fallback).
// Fully empty block rows and columns are trimmed, and finally the grid is
// cropped to its largest all-arrow rectangle when that rectangle is at least
// 6x6; smaller results keep the untrimmed grid so callers can still inspect
// what was detected.
func Minify(g pattern.Grid) (pattern.Grid, error) {
	rows := g.Rows()
	height, width := g.Height(), g.Width()

	top, bottom, left, right, ok := cropBounds(rows)
	if !ok {
		return pattern.Grid{}, ErrNoArrows
	}

	// Expand the low crop corner to a 3-aligned boundary, then shave border
	// rows/cols the expansion pulled in if they are nearly empty.
	rowEnd := min(boundaryHigh(bottom), height-1)
	colEnd := min(boundaryHigh(right), width-1)
	for rowEnd > bottom && rowArrowCount(rows[rowEnd], left, colEnd) <= 1 {
		rowEnd--
	}
	for colEnd > right && colArrowCount(rows, colEnd, top, rowEnd) <= 1 {
		colEnd--
	}
	if top > rowEnd || left > colEnd {
		return pattern.Grid{}, ErrNoArrows
	}

	cropped := make([][]pattern.Symbol, 0, rowEnd-top+1)
	for r := top; r <= rowEnd; r++ {
		cropped = append(cropped, append([]pattern.Symbol(nil), rows[r][left:colEnd+1]...))
	}
	cropped = padToMultipleOf3(cropped)

	h3 := len(cropped) / 3
	w3 := len(cropped[0]) / 3
	blocks := make([][]pattern.Symbol, h3)
	for by := 0; by < h3; by++ {
		blocks[by] = make([]pattern.Symbol, w3)
		for bx := 0; bx < w3; bx++ {
			blocks[by][bx] = blockMajority(cropped, by, bx)
		}
	}

	trimmed, ok := trimEmptyBlocks(blocks)
	if !ok {
		return pattern.Grid{}, ErrNoArrows
	}

	return pattern.NewGrid(cropToLargestArrowRect(trimmed))
}

// ExtractWindow returns the first fully arrow-filled window of the requested
// size in row-major scan order, or false when no such window exists.
func ExtractWindow(g pattern.Grid, rows, cols int) (pattern.Grid, bool) {
	if rows <= 0 || cols <= 0 || g.Height() < rows || g.Width() < cols {
		return pattern.Grid{}, false
	}

	for top := 0; top <= g.Height()-rows; top++ {
		for left := 0; left <= g.Width()-cols; left++ {
			if windowAllArrows(g, top, left, rows, cols) {
				out := make([][]pattern.Symbol, rows)
				for r := 0; r < rows; r++ {
					out[r] = g.Row(top + r)[left : left+cols]
				}
				win, err := pattern.NewGrid(out)
				if err != nil {
					return pattern.Grid{}, false
				}
				return win, true
			}
		}
	}
	return pattern.Grid{}, false
}

func windowAllArrows(g pattern.Grid, top, left, rows, cols int) bool {
	for r := top; r < top+rows; r++ {
		for c := left; c < left+cols; c++ {
			if !g.At(r, c).IsArrow() {
				return false
			}
		}
	}
	return true
}

// cropBounds finds the arrow bounding box and backtracks the top/left corner
// by the detected phase so the crop origin stays 3-aligned even when the
// first phase row or column of readings is entirely missing.
func cropBounds(rows [][]pattern.Symbol) (top, bottom, left, right int, ok bool) {
	height := len(rows)
	width := len(rows[0])

	top, bottom, left, right = -1, -1, -1, -1
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			if rows[r][c].IsArrow() {
				if top == -1 {
					top = r
				}
				bottom = r
				if left == -1 || c < left {
					left = c
				}
				if c > right {
					right = c
				}
			}
		}
	}
	if top == -1 {
		return 0, 0, 0, 0, false
	}

	top = max(0, top-rowPhase(rows[top]))
	left = max(0, left-colPhase(rows, left))
	return top, bottom, left, right, true
}

// rowPhase classifies a row within the 3-row symbol phase by its dominant
// arrow population: the up-dominated row is phase 0, the horizontal row
// phase 1, the down-dominated row phase 2.
func rowPhase(row []pattern.Symbol) int {
	var up, mid, down int
	for _, s := range row {
		switch s {
		case pattern.Up:
			up++
		case pattern.Down:
			down++
		case pattern.Left, pattern.Right:
			mid++
		}
	}
	m := max(up, mid, down)
	switch {
	case m == 0 || up == m:
		return 0
	case mid == m:
		return 1
	default:
		return 2
	}
}

// colPhase mirrors rowPhase for columns: left-dominated is phase 0, the
// vertical column phase 1, right-dominated phase 2.
func colPhase(rows [][]pattern.Symbol, c int) int {
	var left, vertical, right int
	for _, row := range rows {
		switch row[c] {
		case pattern.Left:
			left++
		case pattern.Right:
			right++
		case pattern.Up, pattern.Down:
			vertical++
		}
	}
	m := max(left, vertical, right)
	switch {
	case m == 0 || left == m:
		return 0
	case vertical == m:
		return 1
	default:
		return 2
	}
}

// boundaryHigh extends an index to the last index of its 3-aligned block.
func boundaryHigh(idx int) int {
	return idx + (2 - idx%3)
}

func rowArrowCount(row []pattern.Symbol, c0, c1 int) int {
	n := 0
	for c := c0; c <= c1; c++ {
		if row[c].IsArrow() {
			n++
		}
	}
	return n
}

func colArrowCount(rows [][]pattern.Symbol, c, r0, r1 int) int {
	n := 0
	for r := r0; r <= r1; r++ {
		if rows[r][c].IsArrow() {
			n++
		}
	}
	return n
}

func padToMultipleOf3(rows [][]pattern.Symbol) [][]pattern.Symbol {
	width := len(rows[0])
	padCols := (3 - width%3) % 3
	if padCols > 0 {
		for i := range rows {
			rows[i] = append(rows[i], make([]pattern.Symbol, padCols)...)
		}
		width += padCols
	}
	padRows := (3 - len(rows)%3) % 3
	for i := 0; i < padRows; i++ {
		rows = append(rows, make([]pattern.Symbol, width))
	}
	return rows
}

// blockMajority votes over the 3x3 block at block coordinates (by, bx). On a
// tie the direction with the highest constant value wins, matching the
// original tool's tie-break.
func blockMajority(rows [][]pattern.Symbol, by, bx int) pattern.Symbol {
	counts := map[pattern.Symbol]int{}
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			s := rows[by*3+dy][bx*3+dx]
			if s.IsArrow() {
				counts[s]++
			}
		}
	}
	best := pattern.Empty
	bestCount := 0
	for _, s := range []pattern.Symbol{pattern.Up, pattern.Down, pattern.Left, pattern.Right} {
		if counts[s] >= bestCount && counts[s] > 0 {
			best, bestCount = s, counts[s]
		}
	}
	return best
}

func trimEmptyBlocks(blocks [][]pattern.Symbol) ([][]pattern.Symbol, bool) {
	minR, maxR, minC, maxC := -1, -1, -1, -1
	for r, row := range blocks {
		for c, s := range row {
			if s.IsArrow() {
				if minR == -1 {
					minR = r
				}
				maxR = r
				if minC == -1 || c < minC {
					minC = c
				}
				if c > maxC {
					maxC = c
				}
			}
		}
	}
	if minR == -1 {
		return nil, false
	}

	out := make([][]pattern.Symbol, 0, maxR-minR+1)
	for r := minR; r <= maxR; r++ {
		out = append(out, blocks[r][minC:maxC+1])
	}
	return out, true
}

// cropToLargestArrowRect crops to the maximal rectangle of all-arrow cells,
// found with the largest-rectangle-in-histogram sweep. Rectangles smaller
// than 6x6 are not worth decoding, so the uncropped grid is kept in that
// case for inspection.
func cropToLargestArrowRect(rows [][]pattern.Symbol) [][]pattern.Symbol {
	height := len(rows)
	width := len(rows[0])

	heights := make([]int, width)
	bestArea := 0
	var bestTop, bestLeft, bestBottom, bestRight int

	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			if rows[r][c].IsArrow() {
				heights[c]++
			} else {
				heights[c] = 0
			}
		}

		stack := make([]int, 0, width+1)
		for i := 0; i <= width; i++ {
			curr := 0
			if i < width {
				curr = heights[i]
			}
			for len(stack) > 0 && curr < heights[stack[len(stack)-1]] {
				topIdx := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				h := heights[topIdx]
				if h == 0 {
					continue
				}
				left := 0
				if len(stack) > 0 {
					left = stack[len(stack)-1] + 1
				}
				area := h * (i - left)
				if area > bestArea {
					bestArea = area
					bestTop = r + 1 - h
					bestBottom = r
					bestLeft = left
					bestRight = i - 1
				}
			}
			stack = append(stack, i)
		}
	}

	if bestArea == 0 {
		return rows
	}
	if bestBottom-bestTop+1 < 6 || bestRight-bestLeft+1 < 6 {
		return rows
	}

	out := make([][]pattern.Symbol, 0, bestBottom-bestTop+1)
	for r := bestTop; r <= bestBottom; r++ {
		out = append(out, rows[r][bestLeft:bestRight+1])
	}
	return out
}
