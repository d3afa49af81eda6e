package motif

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tilestitch/internal/fixture"
	"github.com/matzehuels/tilestitch/pkg/raster"
)

func TestSeaMonster(t *testing.T) {
	assert.Equal(t, 20, SeaMonster.Width)
	assert.Equal(t, 3, SeaMonster.Height)
	assert.Len(t, SeaMonster.Cells, 15)
	assert.Equal(t, Point{Row: 0, Col: 18}, SeaMonster.Cells[0])
	assert.Equal(t, seaMonster, SeaMonster.String())
}

func TestParse(t *testing.T) {
	m, err := Parse("hook", "\n.#\n#\n")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Width)
	assert.Equal(t, 2, m.Height)
	assert.Equal(t, []Point{{0, 1}, {1, 0}}, m.Cells)
	assert.Equal(t, " #\n# ", m.String())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("blank", "  \n . ")
	assert.True(t, errors.Is(err, ErrEmptyMotif))

	_, err = Parse("bad", "#x#")
	assert.True(t, errors.Is(err, ErrInvalidMotif))
}

func TestSearchFixture(t *testing.T) {
	img, err := raster.ParseBlock(fixture.Stitched)
	require.NoError(t, err)
	orig := img.Clone()

	m, err := Search(img, SeaMonster)
	require.NoError(t, err)

	assert.Equal(t, "sea monster", m.Motif)
	assert.Equal(t, raster.Orientation{Rotations: 3, Flipped: true}, m.Orientation)
	assert.Equal(t, []Point{{2, 2}, {16, 1}}, m.Positions)
	assert.Len(t, m.Covered, 30)
	assert.Equal(t, fixture.Roughness, m.Roughness)

	// The image is left in the matching orientation.
	want := orig.Clone()
	want.Apply(m.Orientation)
	assert.True(t, img.Equal(want))
}

func TestSearchNotFoundRestoresImage(t *testing.T) {
	img, err := raster.ParseBlock(fixture.Stitched)
	require.NoError(t, err)
	orig := img.Clone()

	square := MustParse("square", "####\n####\n####\n####")
	_, err = Search(img, square)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, img.Equal(orig))
}

func TestSearchTooLarge(t *testing.T) {
	img, err := raster.ParseBlock("##\n##")
	require.NoError(t, err)

	_, err = Search(img, SeaMonster)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestOverlappingOccurrencesCountOnce(t *testing.T) {
	img, err := raster.ParseBlock("###.\n....")
	require.NoError(t, err)

	m, err := Search(img, MustParse("pair", "##"))
	require.NoError(t, err)
	assert.Equal(t, raster.Identity, m.Orientation)
	assert.Equal(t, []Point{{0, 0}, {0, 1}}, m.Positions)
	assert.Equal(t, []Point{{0, 0}, {0, 1}, {0, 2}}, m.Covered)
	assert.Equal(t, 0, m.Roughness)
}

func TestSearchFindsRotatedMotif(t *testing.T) {
	img, err := raster.ParseBlock("#..\n#..\n...")
	require.NoError(t, err)

	m, err := Search(img, MustParse("pair", "##"))
	require.NoError(t, err)
	assert.Equal(t, raster.Orientation{Rotations: 1}, m.Orientation)
	assert.Equal(t, []Point{{0, 1}}, m.Positions)
	assert.Equal(t, ".##\n...\n...", img.String())
}

func TestRoughness(t *testing.T) {
	img, err := raster.ParseBlock("##.\n.#.")
	require.NoError(t, err)
	assert.Equal(t, 3, Roughness(img, nil))
	assert.Equal(t, 1, Roughness(img, []Point{{0, 0}, {1, 1}, {1, 2}}))
}
