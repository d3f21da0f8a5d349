package glyph

import "math"

// box is an axis-aligned bounding box in logical coordinates.
type box struct {
	minX, minY, maxX, maxY float64
}

// rasterizeBounds marks every grid cell whose region intersects any of the
// primitive bounding boxes. Cell (row r, col c) covers the half-open square
// [X+c*R, X+(c+1)*R) x [Y+r*R, Y+(r+1)*R) in logical units.
func rasterizeBounds(f Frame, boxes []box) [][]bool {
	rows, cols := GridSize(f)
	grid := newGrid(rows, cols)

	for _, b := range boxes {
		if b.maxX < b.minX || b.maxY < b.minY {
			continue
		}
		c0 := cellIndex(b.minX-f.X, cols)
		c1 := cellIndex(b.maxX-f.X, cols)
		r0 := cellIndex(b.minY-f.Y, rows)
		r1 := cellIndex(b.maxY-f.Y, rows)
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				grid[r][c] = true
			}
		}
	}
	return grid
}

// cellIndex maps a logical offset to a grid index, clamped into [0, n).
// Clamping keeps primitives that spill outside the declared frame from
// indexing out of range; their overhang simply lands on the edge cells.
func cellIndex(offset float64, n int) int {
	i := int(math.Floor(offset / Resolution))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func newGrid(rows, cols int) [][]bool {
	grid := make([][]bool, rows)
	for r := range grid {
		grid[r] = make([]bool, cols)
	}
	return grid
}

// runsFrom derives the per-column vertical run summary from a grid.
// Each column is scanned top to bottom; a run closes when a filled cell is
// followed by an empty one or by the grid's bottom edge. Runs come out
// non-overlapping and in top-to-bottom order by construction.
func runsFrom(grid [][]bool) [][]Run {
	if len(grid) == 0 {
		return nil
	}
	rows, cols := len(grid), len(grid[0])
	runs := make([][]Run, cols)

	for c := 0; c < cols; c++ {
		var (
			col    []Run
			open   bool
			top    int
			filled int
		)
		for r := 0; r < rows; r++ {
			if grid[r][c] {
				if !open {
					open = true
					top = r
					filled = 0
				}
				filled++
				continue
			}
			if open {
				col = append(col, closeRun(top, r-1, filled))
				open = false
			}
		}
		if open {
			col = append(col, closeRun(top, rows-1, filled))
		}
		runs[c] = col
	}
	return runs
}

func closeRun(top, bottom, filled int) Run {
	length := bottom - top + 1
	return Run{
		Top:     top,
		Bottom:  bottom,
		Density: float64(filled) / float64(length),
	}
}
