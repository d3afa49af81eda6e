// Package edge encodes tile borders as fixed-width bit patterns.
//
// A border is read in a canonical direction and folded most significant bit
// first, with dark pixels as 1 and light pixels as 0. Two tiles can touch
// along a border when one side's pattern equals the mirror of the other's,
// because neighbouring tiles read their shared border in opposite directions.
//
// The width of a pattern is the tile side length. It is fixed for a puzzle
// instance and validated once by [NewCodec]; every encode checks the border
// length against it so that a malformed tile can never produce a pattern of
// the wrong width.
package edge

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/matzehuels/tilestitch/pkg/raster"
)

// MaxWidth is the widest border a Pattern can hold.
const MaxWidth = 32

var (
	// ErrInvalidWidth is returned by [NewCodec] for widths outside 1..MaxWidth.
	ErrInvalidWidth = errors.New("edge width out of range")

	// ErrWidthMismatch is returned by [Codec.Encode] when the border length
	// differs from the codec width.
	ErrWidthMismatch = errors.New("border length does not match edge width")
)

// Pattern is a border encoded as an unsigned integer.
type Pattern uint32

// Codec encodes and mirrors patterns of a single width.
type Codec struct {
	width int
	mask  Pattern
}

// NewCodec returns a codec for borders of the given width.
func NewCodec(width int) (Codec, error) {
	if width < 1 || width > MaxWidth {
		return Codec{}, fmt.Errorf("%w: %d (must be 1..%d)", ErrInvalidWidth, width, MaxWidth)
	}
	return Codec{width: width, mask: Pattern(uint64(1)<<width - 1)}, nil
}

// Width returns the number of bits per pattern.
func (c Codec) Width() int { return c.width }

// Encode folds pixels left to right into a pattern, most significant bit first.
func (c Codec) Encode(pixels []raster.Pixel) (Pattern, error) {
	if len(pixels) != c.width {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrWidthMismatch, len(pixels), c.width)
	}
	var p Pattern
	for _, px := range pixels {
		p <<= 1
		if px == raster.Dark {
			p |= 1
		}
	}
	return p, nil
}

// Mirror reverses the bit order within the codec width.
// Mirror(Mirror(p)) == p for every pattern of that width.
func (c Codec) Mirror(p Pattern) Pattern {
	return Pattern(bits.Reverse32(uint32(p))>>(MaxWidth-c.width)) & c.mask
}

// Decode expands a pattern back into pixels.
func (c Codec) Decode(p Pattern) []raster.Pixel {
	out := make([]raster.Pixel, c.width)
	for i := range out {
		if p&(1<<(c.width-1-i)) != 0 {
			out[i] = raster.Dark
		}
	}
	return out
}

// Format renders a pattern as '#'/'.' text.
func (c Codec) Format(p Pattern) string {
	var sb strings.Builder
	for _, px := range c.Decode(p) {
		sb.WriteRune(px.Rune())
	}
	return sb.String()
}
