package render

import (
	"github.com/matzehuels/tilestitch/pkg/motif"
	"github.com/matzehuels/tilestitch/pkg/raster"
)

// Cell is what a sink draws at one image position.
type Cell uint8

const (
	CellLight Cell = iota
	CellDark
	CellMarked
)

// Cells classifies every pixel of img. Covered positions outside the image
// are ignored.
func Cells(img *raster.Block, covered []motif.Point) [][]Cell {
	out := make([][]Cell, img.Height())
	for r := range out {
		out[r] = make([]Cell, img.Width())
		for c := range out[r] {
			if img.At(r, c) == raster.Dark {
				out[r][c] = CellDark
			}
		}
	}
	for _, p := range covered {
		if p.Row >= 0 && p.Row < img.Height() && p.Col >= 0 && p.Col < img.Width() {
			out[p.Row][p.Col] = CellMarked
		}
	}
	return out
}
