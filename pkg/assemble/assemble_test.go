package assemble

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tilestitch/internal/fixture"
	"github.com/matzehuels/tilestitch/pkg/adjacency"
	"github.com/matzehuels/tilestitch/pkg/raster"
	"github.com/matzehuels/tilestitch/pkg/solver"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

func solved(t *testing.T) *solver.Grid {
	t.Helper()
	tiles, err := tile.ParseAll(fixture.Tiles)
	require.NoError(t, err)
	idx, err := adjacency.Build(tiles)
	require.NoError(t, err)
	g, err := solver.Solve(idx)
	require.NoError(t, err)
	return g
}

func TestAssembleFixture(t *testing.T) {
	img, err := Assemble(solved(t))
	require.NoError(t, err)

	assert.Equal(t, 24, img.Height())
	assert.Equal(t, 24, img.Width())

	// The stitched fixture is the same picture in some orientation.
	want, err := raster.ParseBlock(fixture.Stitched)
	require.NoError(t, err)
	found := false
	for _, o := range raster.Orientations() {
		b := img.Clone()
		b.Apply(o)
		if b.Equal(want) {
			found = true
			break
		}
	}
	assert.True(t, found, "assembled image is not an orientation of the fixture:\n%s", img)
}

func TestAssembleLayout(t *testing.T) {
	g := solved(t)
	img, err := Assemble(g)
	require.NoError(t, err)

	// Row 9 of the image is row 1 of the second grid row.
	want := append(g.At(1, 0).Interior.Row(1), g.At(1, 1).Interior.Row(1)...)
	want = append(want, g.At(1, 2).Interior.Row(1)...)
	assert.Equal(t, want, img.Row(9))
	assert.Equal(t, g.At(2, 2).Interior.At(7, 7), img.At(23, 23))
}

func TestAssembleInteriorMismatch(t *testing.T) {
	g := solved(t)
	small, err := raster.ParseBlock("#.\n.#")
	require.NoError(t, err)
	g.Cells[1][2].Interior = small

	_, err = Assemble(g)
	assert.True(t, errors.Is(err, ErrInteriorMismatch))
}
