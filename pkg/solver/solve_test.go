package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tilestitch/internal/fixture"
	"github.com/matzehuels/tilestitch/pkg/adjacency"
	"github.com/matzehuels/tilestitch/pkg/raster"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

func parseFixture(t *testing.T) []*tile.Tile {
	t.Helper()
	tiles, err := tile.ParseAll(fixture.Tiles)
	require.NoError(t, err)
	return tiles
}

func solve(t *testing.T, tiles []*tile.Tile) (*Grid, error) {
	t.Helper()
	idx, err := adjacency.Build(tiles)
	require.NoError(t, err)
	return Solve(idx)
}

func TestSolveFixture(t *testing.T) {
	g, err := solve(t, parseFixture(t))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Size)
	assert.Equal(t, [][]int{
		{1171, 2473, 3079},
		{1489, 1427, 2311},
		{2971, 2729, 1951},
	}, g.IDs())
	assert.Equal(t, raster.Orientation{Rotations: 1}, g.At(0, 0).Orientation)
	assert.ElementsMatch(t, []int{1171, 1951, 2971, 3079}, g.Corners())
	assert.NoError(t, g.Validate())
}

func TestGridCorners(t *testing.T) {
	g, err := solve(t, parseFixture(t))
	require.NoError(t, err)

	assert.Equal(t, [4]int{1171, 3079, 1951, 2971}, g.Corners())
	assert.Equal(t, uint64(fixture.CornerProduct), g.CornerProduct())
}

func TestSeamFacesNeighbour(t *testing.T) {
	g, err := solve(t, parseFixture(t))
	require.NoError(t, err)

	want, side := seam(g.At(1, 1), tile.Right)
	assert.Equal(t, tile.Left, side)
	assert.Equal(t, want, g.At(1, 2).Side(side))

	want, side = seam(g.At(1, 1), tile.Bottom)
	assert.Equal(t, tile.Top, side)
	assert.Equal(t, want, g.At(2, 1).Side(side))
}

func TestSolveIsDeterministic(t *testing.T) {
	first, err := solve(t, parseFixture(t))
	require.NoError(t, err)
	second, err := solve(t, parseFixture(t))
	require.NoError(t, err)

	assert.Equal(t, first.IDs(), second.IDs())
	assert.Equal(t, first.Orientations(), second.Orientations())
}

func TestSolveLeavesIndexedTilesAlone(t *testing.T) {
	tiles := parseFixture(t)
	before := make([]*tile.Tile, len(tiles))
	for i, tl := range tiles {
		before[i] = tl.Clone()
	}

	_, err := solve(t, tiles)
	require.NoError(t, err)
	for i, tl := range tiles {
		assert.True(t, tl.Equal(before[i]), "tile %d modified", tl.ID)
		assert.Equal(t, raster.Identity, tl.Orientation)
	}
}

func TestSolveScrambledInput(t *testing.T) {
	tiles := parseFixture(t)
	for i, tl := range tiles {
		tl.Apply(raster.Orientations()[i%8])
	}

	g, err := solve(t, tiles)
	require.NoError(t, err)
	assert.NoError(t, g.Validate())
	assert.ElementsMatch(t, []int{1171, 1951, 2971, 3079}, g.Corners())
	assert.Equal(t, 1427, g.At(1, 1).ID)
}

func TestSolveTwoByTwo(t *testing.T) {
	var tiles []*tile.Tile
	for _, tl := range parseFixture(t) {
		switch tl.ID {
		case 1951, 2311, 2729, 1427:
			tiles = append(tiles, tl)
		}
	}

	g, err := solve(t, tiles)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size)
	assert.Equal(t, 1427, g.At(0, 0).ID)
	assert.NoError(t, g.Validate())
}

func TestSolveErrors(t *testing.T) {
	t.Run("not square", func(t *testing.T) {
		_, err := solve(t, parseFixture(t)[:8])
		assert.True(t, errors.Is(err, ErrNotSquareGrid))
	})

	t.Run("single tile", func(t *testing.T) {
		_, err := solve(t, parseFixture(t)[:1])
		assert.True(t, errors.Is(err, ErrNotSquareGrid))
	})

	t.Run("inconsistent census", func(t *testing.T) {
		var tiles []*tile.Tile
		for _, tl := range parseFixture(t) {
			switch tl.ID {
			case 1427, 2311, 1951, 3079:
				tiles = append(tiles, tl)
			}
		}
		_, err := solve(t, tiles)
		assert.True(t, errors.Is(err, adjacency.ErrNeighborCount))
	})
}

func TestValidateDetectsMismatch(t *testing.T) {
	g, err := solve(t, parseFixture(t))
	require.NoError(t, err)

	g.Cells[1][1].Rotate()
	assert.True(t, errors.Is(g.Validate(), ErrSeamMismatch))

	g.Cells[1][1] = nil
	assert.True(t, errors.Is(g.Validate(), ErrInvalidSolution))
}

func TestRebuild(t *testing.T) {
	g, err := solve(t, parseFixture(t))
	require.NoError(t, err)

	rebuilt, err := Rebuild(parseFixture(t), g.IDs(), g.Orientations())
	require.NoError(t, err)
	assert.Equal(t, g.IDs(), rebuilt.IDs())
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			assert.True(t, g.At(r, c).Equal(rebuilt.At(r, c)))
			assert.Equal(t, g.At(r, c).Sides, rebuilt.At(r, c).Sides)
		}
	}
}

func TestRebuildErrors(t *testing.T) {
	g, err := solve(t, parseFixture(t))
	require.NoError(t, err)

	t.Run("unknown tile", func(t *testing.T) {
		ids := g.IDs()
		ids[0][0] = 1
		_, err := Rebuild(parseFixture(t), ids, g.Orientations())
		assert.True(t, errors.Is(err, ErrInvalidSolution))
	})

	t.Run("duplicate tile", func(t *testing.T) {
		ids := g.IDs()
		ids[0][1] = ids[0][0]
		_, err := Rebuild(parseFixture(t), ids, g.Orientations())
		assert.True(t, errors.Is(err, ErrInvalidSolution))
	})

	t.Run("ragged", func(t *testing.T) {
		ids := g.IDs()
		ids[2] = ids[2][:2]
		_, err := Rebuild(parseFixture(t), ids, g.Orientations())
		assert.True(t, errors.Is(err, ErrInvalidSolution))
	})

	t.Run("wrong orientation", func(t *testing.T) {
		os := g.Orientations()
		os[1][1] = os[1][1].AfterRotate()
		_, err := Rebuild(parseFixture(t), g.IDs(), os)
		assert.True(t, errors.Is(err, ErrSeamMismatch))
	})
}
