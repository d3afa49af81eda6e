package render

import (
	"bytes"
	"image/png"
	"os/exec"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tilestitch/internal/fixture"
	"github.com/matzehuels/tilestitch/pkg/motif"
	"github.com/matzehuels/tilestitch/pkg/raster"
)

func searched(t *testing.T) (*raster.Block, *motif.Match) {
	t.Helper()
	img, err := raster.ParseBlock(fixture.Stitched)
	require.NoError(t, err)
	m, err := motif.Search(img, motif.SeaMonster)
	require.NoError(t, err)
	return img, m
}

func TestCells(t *testing.T) {
	img, err := raster.ParseBlock("#.\n.#")
	require.NoError(t, err)

	cells := Cells(img, []motif.Point{{Row: 1, Col: 1}, {Row: 5, Col: 5}})
	assert.Equal(t, [][]Cell{{CellDark, CellLight}, {CellLight, CellMarked}}, cells)
}

func TestTextWithoutCover(t *testing.T) {
	img, err := raster.ParseBlock(fixture.Stitched)
	require.NoError(t, err)
	assert.Equal(t, fixture.Stitched, string(Text(img, nil, DefaultMark)))
}

func TestTextMarksMotif(t *testing.T) {
	img, m := searched(t)
	out := string(Text(img, m.Covered, DefaultMark))

	assert.Equal(t, len(m.Covered), strings.Count(out, "O"))
	assert.Equal(t, m.Roughness, strings.Count(out, "#"))
	assert.Equal(t, img.Height(), strings.Count(out, "\n"))

	custom := string(Text(img, m.Covered, '@'))
	assert.Equal(t, out, strings.ReplaceAll(custom, "@", "O"))
}

func TestStyledKeepsGlyphs(t *testing.T) {
	img, m := searched(t)
	out := Styled(img, m.Covered, DefaultMark)

	plain := strings.TrimSuffix(string(Text(img, m.Covered, DefaultMark)), "\n")
	assert.Equal(t, plain, ansi.Strip(out))
}

func TestPNG(t *testing.T) {
	img, m := searched(t)

	data, err := PNG(img, m.Covered, 4)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, img.Width()*4, decoded.Bounds().Dx())
	assert.Equal(t, img.Height()*4, decoded.Bounds().Dy())

	p := m.Covered[0]
	r, g, b, _ := decoded.At(p.Col*4+3, p.Row*4+3).RGBA()
	wr, wg, wb, _ := Palette[CellMarked].RGBA()
	assert.Equal(t, []uint32{wr, wg, wb}, []uint32{r, g, b})
}

func TestPNGRejectsScale(t *testing.T) {
	img, err := raster.ParseBlock("#")
	require.NoError(t, err)
	_, err = PNG(img, nil, 0)
	assert.Error(t, err)
}

func TestToPDF(t *testing.T) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		t.Skip("rsvg-convert not installed")
	}
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`)
	pdf, err := ToPDF(svg)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}
