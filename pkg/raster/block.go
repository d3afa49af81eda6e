package raster

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotRectangular is returned when rows of a block differ in length.
var ErrNotRectangular = errors.New("rows must have equal length")

// Block is a rectangular matrix of pixels stored row-major.
//
// The zero value is an empty 0×0 block.
type Block struct {
	rows  [][]Pixel
	width int
}

// NewBlock builds a block from rows. The rows are copied.
func NewBlock(rows [][]Pixel) (*Block, error) {
	b := &Block{rows: make([][]Pixel, len(rows))}
	for i, row := range rows {
		if i == 0 {
			b.width = len(row)
		} else if len(row) != b.width {
			return nil, fmt.Errorf("row %d has %d pixels, want %d: %w", i, len(row), b.width, ErrNotRectangular)
		}
		b.rows[i] = append([]Pixel(nil), row...)
	}
	return b, nil
}

// ParseBlock parses newline-separated rows of '#' and '.'.
// Leading and trailing blank lines are ignored.
func ParseBlock(text string) (*Block, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	rows := make([][]Pixel, 0, len(lines))
	for i, line := range lines {
		row, err := ParseRow(strings.TrimRight(line, "\r"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	return NewBlock(rows)
}

// Height returns the number of rows.
func (b *Block) Height() int { return len(b.rows) }

// Width returns the number of columns.
func (b *Block) Width() int { return b.width }

// At returns the pixel at row r, column c.
func (b *Block) At(r, c int) Pixel { return b.rows[r][c] }

// Set overwrites the pixel at row r, column c.
func (b *Block) Set(r, c int, p Pixel) { b.rows[r][c] = p }

// Row returns a copy of row r.
func (b *Block) Row(r int) []Pixel { return append([]Pixel(nil), b.rows[r]...) }

// Count returns how many pixels equal p.
func (b *Block) Count(p Pixel) int {
	n := 0
	for _, row := range b.rows {
		for _, q := range row {
			if q == p {
				n++
			}
		}
	}
	return n
}

// Rotate turns the block 90° clockwise in place.
// The pixel at (r, c) moves to (c, H-1-r); width and height swap.
//
//	[[a, b, c],      [[g, d, a],
//	 [d, e, f],  ->   [h, e, b],
//	 [g, h, i]]       [i, f, c]]
func (b *Block) Rotate() {
	h, w := b.Height(), b.width
	rotated := make([][]Pixel, w)
	for r := 0; r < w; r++ {
		rotated[r] = make([]Pixel, h)
		for c := 0; c < h; c++ {
			rotated[r][c] = b.rows[h-1-c][r]
		}
	}
	b.rows = rotated
	b.width = h
}

// FlipX mirrors the block horizontally in place (reverses every row).
func (b *Block) FlipX() {
	for _, row := range b.rows {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

// Apply transforms the block from the identity into orientation o.
func (b *Block) Apply(o Orientation) {
	o = o.normalized()
	if o.Flipped {
		b.FlipX()
	}
	for i := 0; i < o.Rotations; i++ {
		b.Rotate()
	}
}

// Clone returns a deep copy of the block.
func (b *Block) Clone() *Block {
	c := &Block{rows: make([][]Pixel, len(b.rows)), width: b.width}
	for i, row := range b.rows {
		c.rows[i] = append([]Pixel(nil), row...)
	}
	return c
}

// Equal reports whether both blocks have the same shape and pixels.
func (b *Block) Equal(o *Block) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.Height() != o.Height() || b.width != o.width {
		return false
	}
	for r, row := range b.rows {
		for c, p := range row {
			if o.rows[r][c] != p {
				return false
			}
		}
	}
	return true
}

// String renders the block as '#'/'.' rows joined by newlines.
func (b *Block) String() string {
	var sb strings.Builder
	sb.Grow(b.Height() * (b.width + 1))
	for r, row := range b.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, p := range row {
			sb.WriteRune(p.Rune())
		}
	}
	return sb.String()
}
