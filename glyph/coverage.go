package glyph

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// rasterizeCoverage scan-converts the outline paths onto the grid, one
// pixel per cell, and marks cells with nonzero coverage. Coordinates are
// mapped from the logical frame so the grid dimensions match
// rasterizeBounds exactly.
func rasterizeCoverage(f Frame, paths [][]segment) [][]bool {
	rows, cols := GridSize(f)

	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	scanner := rasterx.NewScannerGV(cols, rows, img, img.Bounds())
	scanner.SetColor(color.NRGBA{A: 0xff})
	filler := rasterx.NewFiller(cols, rows, scanner)

	tx := func(p point) fixed.Point26_6 {
		return rasterx.ToFixedP((p.X-f.X)/Resolution, (p.Y-f.Y)/Resolution)
	}

	for _, segs := range paths {
		open := false
		for _, s := range segs {
			switch s.Op {
			case opMove:
				if open {
					filler.Stop(false)
				}
				filler.Start(tx(s.P1))
				open = true
			case opLine:
				filler.Line(tx(s.P1))
			case opQuad:
				filler.QuadBezier(tx(s.P1), tx(s.P2))
			case opCube:
				filler.CubeBezier(tx(s.P1), tx(s.P2), tx(s.P3))
			case opClose:
				filler.Stop(true)
				open = false
			}
		}
		if open {
			filler.Stop(false)
		}
	}
	filler.Draw()

	grid := newGrid(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			grid[r][c] = img.RGBAAt(c, r).A > 0
		}
	}
	return grid
}
