package tile

import (
	"errors"
	"fmt"

	"github.com/matzehuels/tilestitch/pkg/edge"
	"github.com/matzehuels/tilestitch/pkg/raster"
)

// ErrNoOrientation is returned by [Tile.OrientTo] when no rotation or flip
// brings the requested border into place. It signals an inconsistent tile
// set rather than a recoverable condition.
var ErrNoOrientation = errors.New("no orientation matches target border")

// Side indexes the four borders of a tile in clockwise order.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Opposite returns the side facing s across the tile.
func (s Side) Opposite() Side { return (s + 2) % 4 }

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

// Tile is a square piece with encoded borders and an interior block.
type Tile struct {
	ID          int
	Sides       [4]edge.Pattern
	Interior    *raster.Block
	Orientation raster.Orientation

	codec edge.Codec
}

// New assembles a tile from already encoded sides.
func New(id int, sides [4]edge.Pattern, interior *raster.Block, codec edge.Codec) *Tile {
	return &Tile{ID: id, Sides: sides, Interior: interior, codec: codec}
}

// Codec returns the codec the tile's borders were encoded with.
func (t *Tile) Codec() edge.Codec { return t.codec }

// Side returns the border pattern at s.
func (t *Tile) Side(s Side) edge.Pattern { return t.Sides[s] }

// Rotate turns the tile 90° clockwise: (top, right, bottom, left) becomes
// (left, top, right, bottom).
func (t *Tile) Rotate() {
	t.Sides = [4]edge.Pattern{t.Sides[Left], t.Sides[Top], t.Sides[Right], t.Sides[Bottom]}
	t.Interior.Rotate()
	t.Orientation = t.Orientation.AfterRotate()
}

// Flip mirrors the tile horizontally. Left and right swap, and every border
// is now read in the opposite direction.
func (t *Tile) Flip() {
	m := t.codec.Mirror
	t.Sides = [4]edge.Pattern{m(t.Sides[Top]), m(t.Sides[Left]), m(t.Sides[Bottom]), m(t.Sides[Right])}
	t.Interior.FlipX()
	t.Orientation = t.Orientation.AfterFlip()
}

// Apply transforms a tile in the identity orientation into o.
func (t *Tile) Apply(o raster.Orientation) {
	if o.Flipped {
		t.Flip()
	}
	for i := 0; i < ((o.Rotations%4)+4)%4; i++ {
		t.Rotate()
	}
}

// PossibleSides returns every pattern the tile can present on any side in
// any orientation: each raw border followed by its mirror.
func (t *Tile) PossibleSides() [8]edge.Pattern {
	var out [8]edge.Pattern
	for i, s := range t.Sides {
		out[2*i] = s
		out[2*i+1] = t.codec.Mirror(s)
	}
	return out
}

// OrientTo rotates and, if needed, flips the tile once until the border at
// side equals target. It rotates at most three times.
func (t *Tile) OrientTo(target edge.Pattern, side Side) error {
	for pass := 0; pass < 2; pass++ {
		if t.Sides[side] == target {
			return nil
		}
		if n, ok := t.find(target); ok {
			for i := 0; i < (int(side)+4-int(n))%4; i++ {
				t.Rotate()
			}
			return nil
		}
		t.Flip()
	}
	if t.Sides[side] == target {
		return nil
	}
	return fmt.Errorf("tile %d: %s = %s: %w", t.ID, side, t.codec.Format(target), ErrNoOrientation)
}

func (t *Tile) find(p edge.Pattern) (Side, bool) {
	for i, s := range t.Sides {
		if s == p {
			return Side(i), true
		}
	}
	return 0, false
}

// Clone returns a deep copy of the tile.
func (t *Tile) Clone() *Tile {
	c := *t
	c.Interior = t.Interior.Clone()
	return &c
}

// Equal reports whether two tiles have the same id, borders and interior.
// The recorded orientation is not compared.
func (t *Tile) Equal(o *Tile) bool {
	return t.ID == o.ID && t.Sides == o.Sides && t.Interior.Equal(o.Interior)
}

// String returns a short description such as "2311@rot90+flip".
func (t *Tile) String() string { return fmt.Sprintf("%d@%s", t.ID, t.Orientation) }
