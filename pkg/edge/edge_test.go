package edge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tilestitch/pkg/raster"
)

func mustCodec(t *testing.T, width int) Codec {
	t.Helper()
	c, err := NewCodec(width)
	require.NoError(t, err)
	return c
}

func TestEncode(t *testing.T) {
	c := mustCodec(t, 10)
	row, err := raster.ParseRow("..##.#..#.")
	require.NoError(t, err)

	p, err := c.Encode(row)
	require.NoError(t, err)
	assert.Equal(t, Pattern(0b0011010010), p)
	assert.Equal(t, "..##.#..#.", c.Format(p))
}

func TestMirrorRoundTrip(t *testing.T) {
	c := mustCodec(t, 10)
	row, err := raster.ParseRow("..##.#..#.")
	require.NoError(t, err)

	p, err := c.Encode(row)
	require.NoError(t, err)
	assert.Equal(t, p, c.Mirror(c.Mirror(p)))
	assert.Equal(t, ".#..#.##..", c.Format(c.Mirror(p)))
}

func TestMirrorKnownValues(t *testing.T) {
	c := mustCodec(t, 10)
	a := Pattern(0b0100000101)
	b := Pattern(0b1010000010)
	assert.Equal(t, b, c.Mirror(a))
	assert.Equal(t, a, c.Mirror(b))
}

func TestMirrorInvolutionAllPatterns(t *testing.T) {
	for _, width := range []int{1, 3, 8, 10} {
		c := mustCodec(t, width)
		for p := Pattern(0); p < Pattern(1)<<width; p++ {
			if got := c.Mirror(c.Mirror(p)); got != p {
				t.Fatalf("width %d: Mirror(Mirror(%b)) = %b", width, p, got)
			}
		}
	}
}

func TestMirrorFullWidth(t *testing.T) {
	c := mustCodec(t, MaxWidth)
	p := Pattern(0x80000001 | 0x00F00000)
	assert.Equal(t, p, c.Mirror(c.Mirror(p)))
	assert.Equal(t, Pattern(0x80000F01), c.Mirror(p))
}

func TestDecode(t *testing.T) {
	c := mustCodec(t, 4)
	assert.Equal(t, []raster.Pixel{raster.Dark, raster.Light, raster.Dark, raster.Dark}, c.Decode(0b1011))
}

func TestEncodeWidthMismatch(t *testing.T) {
	c := mustCodec(t, 10)
	row, err := raster.ParseRow("..##.#..#")
	require.NoError(t, err)

	_, err = c.Encode(row)
	assert.True(t, errors.Is(err, ErrWidthMismatch))
}

func TestNewCodecInvalidWidth(t *testing.T) {
	for _, w := range []int{0, -1, MaxWidth + 1} {
		_, err := NewCodec(w)
		assert.True(t, errors.Is(err, ErrInvalidWidth), "width %d", w)
	}
}
