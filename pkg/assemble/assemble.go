// Package assemble stitches the interiors of a solved grid into one image.
package assemble

import (
	"errors"
	"fmt"

	"github.com/matzehuels/tilestitch/pkg/raster"
	"github.com/matzehuels/tilestitch/pkg/solver"
)

// ErrInteriorMismatch is returned when placed tiles have interiors of
// different sizes.
var ErrInteriorMismatch = errors.New("tile interiors differ in size")

// Assemble concatenates the interiors of g row by row. The result is a
// square block of side k·g.Size, where k is the interior side.
func Assemble(g *solver.Grid) (*raster.Block, error) {
	if g.Size == 0 {
		return raster.NewBlock(nil)
	}
	first := g.At(0, 0).Interior
	k := first.Height()
	if first.Width() != k {
		return nil, fmt.Errorf("%w: tile %d interior is %d×%d", ErrInteriorMismatch, g.At(0, 0).ID, first.Width(), k)
	}

	rows := make([][]raster.Pixel, 0, k*g.Size)
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			in := g.At(r, c).Interior
			if in.Height() != k || in.Width() != k {
				return nil, fmt.Errorf("%w: tile %d interior is %d×%d, want %d×%d",
					ErrInteriorMismatch, g.At(r, c).ID, in.Width(), in.Height(), k, k)
			}
		}
		for i := 0; i < k; i++ {
			row := make([]raster.Pixel, 0, k*g.Size)
			for c := 0; c < g.Size; c++ {
				row = append(row, g.At(r, c).Interior.Row(i)...)
			}
			rows = append(rows, row)
		}
	}
	return raster.NewBlock(rows)
}
