package tile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tilestitch/internal/fixture"
	"github.com/matzehuels/tilestitch/pkg/edge"
	"github.com/matzehuels/tilestitch/pkg/raster"
)

const tile2311 = `Tile 2311:
..##.#..#.
##..#.....
#...##..#.
####.#...#
##.##.###.
##...#.###
.#.#.#..##
..#....#..
###...#.#.
..###..###`

func TestParse(t *testing.T) {
	tl, err := Parse(tile2311)
	require.NoError(t, err)

	assert.Equal(t, 2311, tl.ID)
	assert.Equal(t, [4]edge.Pattern{0b0011010010, 0b0001011001, 0b1110011100, 0b0100111110}, tl.Sides)
	assert.Equal(t, 10, tl.Codec().Width())
	assert.Equal(t, raster.Identity, tl.Orientation)

	want := "#..#....\n...##..#\n###.#...\n#.##.###\n#...#.##\n#.#.#..#\n.#....#.\n##...#.#"
	assert.Equal(t, want, tl.Interior.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "  \n", ErrEmptyInput},
		{"no header", "##\n..", ErrInvalidHeader},
		{"bad id", "Tile x:\n##\n..", ErrInvalidHeader},
		{"missing colon", "Tile 1\n##\n..", ErrInvalidHeader},
		{"one row", "Tile 1:\n#", ErrTooSmall},
		{"not square", "Tile 1:\n###\n...", ErrNotSquare},
		{"bad pixel", "Tile 1:\n#x\n..", raster.ErrIllegalPixel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestParseAll(t *testing.T) {
	tiles, err := ParseAll(fixture.Tiles)
	require.NoError(t, err)
	require.Len(t, tiles, 9)
	assert.Equal(t, 2311, tiles[0].ID)
	assert.Equal(t, 3079, tiles[8].ID)
}

func TestParseAllWhitespaceSeparators(t *testing.T) {
	input := "Tile 1:\n##\n.#\n   \t\nTile 2:\n#.\n..\n"
	tiles, err := ParseAll(input)
	require.NoError(t, err)
	require.Len(t, tiles, 2)
	assert.Equal(t, 2, tiles[1].ID)
}

func TestParseAllErrors(t *testing.T) {
	_, err := ParseAll("Tile 1:\n##\n.#\n\nTile 1:\n#.\n..")
	assert.True(t, errors.Is(err, ErrDuplicateID))

	_, err = ParseAll("Tile 1:\n##\n.#\n\nTile 2:\n#..\n...\n..#")
	assert.True(t, errors.Is(err, ErrWidthMismatch))

	_, err = ParseAll("\n\n")
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestRotateCyclesSides(t *testing.T) {
	tl, err := Parse(tile2311)
	require.NoError(t, err)
	s := tl.Sides

	tl.Rotate()
	assert.Equal(t, [4]edge.Pattern{s[Left], s[Top], s[Right], s[Bottom]}, tl.Sides)
	assert.Equal(t, raster.Orientation{Rotations: 1}, tl.Orientation)
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	orig, err := Parse(tile2311)
	require.NoError(t, err)

	tl := orig.Clone()
	for i := 0; i < 4; i++ {
		tl.Rotate()
	}
	assert.True(t, tl.Equal(orig))
	assert.Equal(t, raster.Identity, tl.Orientation)
}

func TestFlipTwiceIsIdentity(t *testing.T) {
	orig, err := Parse(tile2311)
	require.NoError(t, err)

	tl := orig.Clone()
	tl.Flip()
	c := tl.Codec()
	assert.Equal(t, c.Mirror(orig.Sides[Top]), tl.Sides[Top])
	assert.Equal(t, c.Mirror(orig.Sides[Left]), tl.Sides[Right])
	assert.Equal(t, c.Mirror(orig.Sides[Right]), tl.Sides[Left])
	assert.False(t, tl.Equal(orig))

	tl.Flip()
	assert.True(t, tl.Equal(orig))
	assert.Equal(t, raster.Identity, tl.Orientation)
}

// Borders re-read from a transformed interior-plus-frame must agree with the
// transformed sides.
func TestTransformsAgreeWithRaster(t *testing.T) {
	tl, err := Parse(tile2311)
	require.NoError(t, err)
	full, err := raster.ParseBlock(tile2311[len("Tile 2311:\n"):])
	require.NoError(t, err)

	for _, o := range raster.Orientations() {
		moved := tl.Clone()
		moved.Apply(o)
		b := full.Clone()
		b.Apply(o)

		rows := make([][]raster.Pixel, b.Height())
		for r := range rows {
			rows[r] = b.Row(r)
		}
		want, err := fromRows(tl.ID, rows, tl.Codec())
		require.NoError(t, err)
		assert.Equal(t, want.Sides, moved.Sides, "orientation %s", o)
		assert.True(t, want.Interior.Equal(moved.Interior), "orientation %s", o)
	}
}

func TestPossibleSides(t *testing.T) {
	tl, err := Parse(tile2311)
	require.NoError(t, err)

	got := tl.PossibleSides()
	c := tl.Codec()
	for i, s := range tl.Sides {
		assert.Equal(t, s, got[2*i])
		assert.Equal(t, c.Mirror(s), got[2*i+1])
	}

	// Every orientation presents only patterns from the set.
	set := map[edge.Pattern]bool{}
	for _, p := range got {
		set[p] = true
	}
	for _, o := range raster.Orientations() {
		moved := tl.Clone()
		moved.Apply(o)
		for _, s := range moved.Sides {
			assert.True(t, set[s], "orientation %s exposes %s", o, c.Format(s))
		}
	}
}

func TestOrientTo(t *testing.T) {
	tiles, err := ParseAll(fixture.Tiles)
	require.NoError(t, err)

	for _, orig := range tiles {
		for _, p := range orig.PossibleSides() {
			for side := Top; side <= Left; side++ {
				tl := orig.Clone()
				require.NoError(t, tl.OrientTo(p, side))
				assert.Equal(t, p, tl.Side(side), "tile %d side %s", orig.ID, side)

				replay := orig.Clone()
				replay.Apply(tl.Orientation)
				assert.Equal(t, tl.Sides, replay.Sides)
				assert.True(t, tl.Interior.Equal(replay.Interior))
			}
		}
	}
}

func TestOrientToUnknownPattern(t *testing.T) {
	orig, err := Parse(tile2311)
	require.NoError(t, err)

	tl := orig.Clone()
	err = tl.OrientTo(0b1111111111, Top)
	assert.True(t, errors.Is(err, ErrNoOrientation))
	assert.True(t, tl.Equal(orig))
	assert.Equal(t, raster.Identity, tl.Orientation)
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, Bottom, Top.Opposite())
	assert.Equal(t, Left, Right.Opposite())
	assert.Equal(t, "left", Left.String())
}
