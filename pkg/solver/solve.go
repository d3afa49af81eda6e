package solver

import (
	"errors"
	"fmt"

	"github.com/matzehuels/tilestitch/pkg/adjacency"
	"github.com/matzehuels/tilestitch/pkg/edge"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

var (
	// ErrNotSquareGrid is returned when the tile count is not n² with n >= 2.
	ErrNotSquareGrid = errors.New("tile count is not a square of at least 2×2")

	// ErrAnchor is returned when no rotation exposes a corner's two shared
	// borders on its right and bottom.
	ErrAnchor = errors.New("corner tile cannot be anchored")

	// ErrMissingNeighbor is returned when no other tile fits a border that
	// must have a neighbour.
	ErrMissingNeighbor = errors.New("no tile fits border")

	// ErrAmbiguous is returned when more than one other tile fits a border.
	ErrAmbiguous = errors.New("more than one tile fits border")

	// ErrReused is returned when the only fitting tile is already placed.
	ErrReused = errors.New("tile already placed")

	// ErrOverflow is returned when a tile still fits below the last row.
	ErrOverflow = errors.New("tile fits outside the grid")
)

// Solve places every indexed tile into a square grid. Indexed tiles are not
// modified; the grid holds oriented clones.
func Solve(idx *adjacency.Index) (*Grid, error) {
	n, ok := adjacency.GridSide(idx.Len())
	if !ok {
		return nil, fmt.Errorf("%w: %d tiles", ErrNotSquareGrid, idx.Len())
	}
	corners, err := idx.Corners()
	if err != nil {
		return nil, err
	}

	s := &solver{idx: idx, used: make(map[int]bool, idx.Len())}
	anchor, err := s.anchor(corners[0])
	if err != nil {
		return nil, err
	}

	g := newGrid(n)
	for r := 0; r < n; r++ {
		if r == 0 {
			g.Cells[0][0] = anchor
		} else {
			start, err := s.rowStart(g.Cells[r-1][0])
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", r, err)
			}
			g.Cells[r][0] = start
		}

		for c := 1; c < n; c++ {
			var above *tile.Tile
			if r > 0 {
				above = g.Cells[r-1][c]
			}
			t, err := s.rightOf(g.Cells[r][c-1], above)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}
			g.Cells[r][c] = t
		}
	}

	last := g.Cells[n-1][0]
	below, _ := seam(last, tile.Bottom)
	if others := idx.Others(below, last.ID); len(others) > 0 {
		return nil, fmt.Errorf("%w: %v below %s", ErrOverflow, others, last)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

type solver struct {
	idx  *adjacency.Index
	used map[int]bool
}

// seam returns the border a neighbour must present against side of t and
// the neighbour side it goes on.
func seam(t *tile.Tile, side tile.Side) (edge.Pattern, tile.Side) {
	return t.Codec().Mirror(t.Side(side)), side.Opposite()
}

func (s *solver) shared(t *tile.Tile, side tile.Side) bool {
	return s.idx.Count(t.Side(side)) > 1
}

// anchor orients the corner so that only its right and bottom borders are
// shared.
func (s *solver) anchor(id int) (*tile.Tile, error) {
	orig, ok := s.idx.Tile(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", adjacency.ErrUnknownTile, id)
	}
	t := orig.Clone()
	for i := 0; i < 4; i++ {
		if s.shared(t, tile.Right) && s.shared(t, tile.Bottom) {
			s.used[t.ID] = true
			return t, nil
		}
		t.Rotate()
	}
	return nil, fmt.Errorf("tile %d: %w", id, ErrAnchor)
}

// take returns an unplaced clone of the only other tile that can present
// target.
func (s *solver) take(target edge.Pattern, from *tile.Tile) (*tile.Tile, error) {
	others := s.idx.Others(target, from.ID)
	switch {
	case len(others) == 0:
		return nil, fmt.Errorf("%w: %s of %s", ErrMissingNeighbor, from.Codec().Format(target), from)
	case len(others) > 1:
		return nil, fmt.Errorf("%w: %s of %s fits %v", ErrAmbiguous, from.Codec().Format(target), from, others)
	}
	id := others[0]
	if s.used[id] {
		return nil, fmt.Errorf("%w: %d next to %s", ErrReused, id, from)
	}
	orig, _ := s.idx.Tile(id)
	s.used[id] = true
	return orig.Clone(), nil
}

// rowStart places the tile below above, the first tile of the previous row.
func (s *solver) rowStart(above *tile.Tile) (*tile.Tile, error) {
	target, side := seam(above, tile.Bottom)
	t, err := s.take(target, above)
	if err != nil {
		return nil, err
	}
	if err := t.OrientTo(target, side); err != nil {
		return nil, err
	}
	// A palindromic top border leaves the handedness open.
	if !s.shared(t, tile.Right) {
		t.Flip()
		if t.Side(side) != target {
			return nil, fmt.Errorf("%w: %s cannot be mirrored below %s", ErrSeamMismatch, t, above)
		}
	}
	return t, nil
}

// rightOf places the tile right of left. above is the tile that will sit on
// top of it, or nil in the first row.
func (s *solver) rightOf(left, above *tile.Tile) (*tile.Tile, error) {
	target, side := seam(left, tile.Right)
	t, err := s.take(target, left)
	if err != nil {
		return nil, err
	}
	if err := t.OrientTo(target, side); err != nil {
		return nil, err
	}
	if !s.fitsVertically(t, above) {
		// Mirror top to bottom: a palindromic left border survives it.
		t.Flip()
		t.Rotate()
		t.Rotate()
		if t.Side(side) != target || !s.fitsVertically(t, above) {
			return nil, fmt.Errorf("%w: %s between %s and %v", ErrSeamMismatch, t, left, above)
		}
	}
	return t, nil
}

func (s *solver) fitsVertically(t, above *tile.Tile) bool {
	if above == nil {
		return !s.shared(t, tile.Top)
	}
	want, side := seam(above, tile.Bottom)
	return t.Side(side) == want
}
