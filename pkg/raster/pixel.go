package raster

import (
	"errors"
	"fmt"
)

// ErrIllegalPixel is returned when a character other than '#' or '.' appears
// where a pixel is expected.
var ErrIllegalPixel = errors.New("illegal pixel character")

// Pixel is a single binary cell.
type Pixel uint8

const (
	// Light is an unset pixel, written as '.'.
	Light Pixel = iota
	// Dark is a set pixel, written as '#'.
	Dark
)

// Rune returns the text form of the pixel.
func (p Pixel) Rune() rune {
	if p == Dark {
		return '#'
	}
	return '.'
}

// String implements fmt.Stringer.
func (p Pixel) String() string { return string(p.Rune()) }

// ParsePixel converts '#' or '.' into a Pixel.
func ParsePixel(r rune) (Pixel, error) {
	switch r {
	case '#':
		return Dark, nil
	case '.':
		return Light, nil
	}
	return Light, fmt.Errorf("%w: %q", ErrIllegalPixel, r)
}

// ParseRow converts a line of '#' and '.' characters into pixels.
func ParseRow(line string) ([]Pixel, error) {
	row := make([]Pixel, 0, len(line))
	for i, r := range line {
		p, err := ParsePixel(r)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		row = append(row, p)
	}
	return row, nil
}
