package solver

import (
	"errors"
	"fmt"

	"github.com/matzehuels/tilestitch/pkg/raster"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

var (
	// ErrSeamMismatch is returned by [Grid.Validate] when two adjacent tiles
	// do not share a border bit for bit.
	ErrSeamMismatch = errors.New("adjacent borders do not match")

	// ErrInvalidSolution is returned by [Rebuild] when the recorded ids or
	// orientations do not describe a square grid of known tiles.
	ErrInvalidSolution = errors.New("invalid solution")
)

// Grid is a solved placement: Size rows of Size oriented tiles.
type Grid struct {
	Size  int
	Cells [][]*tile.Tile
}

func newGrid(n int) *Grid {
	g := &Grid{Size: n, Cells: make([][]*tile.Tile, n)}
	for r := range g.Cells {
		g.Cells[r] = make([]*tile.Tile, n)
	}
	return g
}

// At returns the tile in row r, column c.
func (g *Grid) At(r, c int) *tile.Tile { return g.Cells[r][c] }

// IDs returns the tile ids in row-major order.
func (g *Grid) IDs() [][]int {
	out := make([][]int, g.Size)
	for r, row := range g.Cells {
		out[r] = make([]int, len(row))
		for c, t := range row {
			out[r][c] = t.ID
		}
	}
	return out
}

// Orientations returns the orientation of each placed tile relative to its
// parsed form.
func (g *Grid) Orientations() [][]raster.Orientation {
	out := make([][]raster.Orientation, g.Size)
	for r, row := range g.Cells {
		out[r] = make([]raster.Orientation, len(row))
		for c, t := range row {
			out[r][c] = t.Orientation
		}
	}
	return out
}

// Corners returns the ids at the four grid corners, clockwise from the top
// left.
func (g *Grid) Corners() [4]int {
	last := g.Size - 1
	return [4]int{g.Cells[0][0].ID, g.Cells[0][last].ID, g.Cells[last][last].ID, g.Cells[last][0].ID}
}

// CornerProduct multiplies the ids of the four grid corners.
func (g *Grid) CornerProduct() uint64 {
	product := uint64(1)
	for _, id := range g.Corners() {
		product *= uint64(id)
	}
	return product
}

// Validate checks that the grid is square and fully populated and that
// every horizontal and vertical seam matches.
func (g *Grid) Validate() error {
	if len(g.Cells) != g.Size {
		return fmt.Errorf("%w: %d rows for size %d", ErrInvalidSolution, len(g.Cells), g.Size)
	}
	for r, row := range g.Cells {
		if len(row) != g.Size {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSolution, r, len(row), g.Size)
		}
		for c, t := range row {
			if t == nil {
				return fmt.Errorf("%w: empty cell (%d,%d)", ErrInvalidSolution, r, c)
			}
		}
	}

	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			t := g.Cells[r][c]
			m := t.Codec().Mirror
			if c+1 < g.Size {
				right := g.Cells[r][c+1]
				if right.Side(tile.Left) != m(t.Side(tile.Right)) {
					return fmt.Errorf("%w: %s right of %s at (%d,%d)", ErrSeamMismatch, right, t, r, c+1)
				}
			}
			if r+1 < g.Size {
				below := g.Cells[r+1][c]
				if below.Side(tile.Top) != m(t.Side(tile.Bottom)) {
					return fmt.Errorf("%w: %s below %s at (%d,%d)", ErrSeamMismatch, below, t, r+1, c)
				}
			}
		}
	}
	return nil
}

// Rebuild reconstructs a grid from recorded ids and orientations. Tiles are
// looked up by id, cloned, reoriented and the result is validated.
func Rebuild(tiles []*tile.Tile, ids [][]int, orientations [][]raster.Orientation) (*Grid, error) {
	byID := make(map[int]*tile.Tile, len(tiles))
	for _, t := range tiles {
		byID[t.ID] = t
	}

	n := len(ids)
	if n < 2 || len(orientations) != n || n*n != len(tiles) {
		return nil, fmt.Errorf("%w: %d rows for %d tiles", ErrInvalidSolution, n, len(tiles))
	}
	g := newGrid(n)
	used := make(map[int]bool, len(tiles))
	for r := 0; r < n; r++ {
		if len(ids[r]) != n || len(orientations[r]) != n {
			return nil, fmt.Errorf("%w: row %d is not %d wide", ErrInvalidSolution, r, n)
		}
		for c := 0; c < n; c++ {
			id := ids[r][c]
			orig, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("%w: unknown tile %d at (%d,%d)", ErrInvalidSolution, id, r, c)
			}
			if used[id] {
				return nil, fmt.Errorf("%w: tile %d placed twice", ErrInvalidSolution, id)
			}
			used[id] = true
			t := orig.Clone()
			t.Apply(orientations[r][c])
			g.Cells[r][c] = t
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
