package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/matzehuels/tilestitch/pkg/motif"
	"github.com/matzehuels/tilestitch/pkg/raster"
)

// DefaultScale is the default PNG size of one cell in pixels.
const DefaultScale = 8

// Palette colours indexed by [Cell].
var Palette = color.Palette{
	CellLight:  color.RGBA{0x0b, 0x1d, 0x3a, 0xff},
	CellDark:   color.RGBA{0x4f, 0x9d, 0xde, 0xff},
	CellMarked: color.RGBA{0xf2, 0xc1, 0x4e, 0xff},
}

// PNG encodes img with each cell drawn as a scale×scale square.
func PNG(img *raster.Block, covered []motif.Point, scale int) ([]byte, error) {
	if scale < 1 {
		return nil, fmt.Errorf("png scale must be positive, got %d", scale)
	}

	src := image.NewPaletted(image.Rect(0, 0, img.Width(), img.Height()), Palette)
	for r, row := range Cells(img, covered) {
		for c, cell := range row {
			src.SetColorIndex(c, r, uint8(cell))
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, img.Width()*scale, img.Height()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
