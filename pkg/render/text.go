package render

import (
	"bytes"

	"github.com/matzehuels/tilestitch/pkg/motif"
	"github.com/matzehuels/tilestitch/pkg/raster"
)

// DefaultMark replaces motif cells in text output.
const DefaultMark = 'O'

// Text renders img row by row, newline terminated, with covered cells
// replaced by mark.
func Text(img *raster.Block, covered []motif.Point, mark rune) []byte {
	var buf bytes.Buffer
	buf.Grow(img.Height() * (img.Width() + 1))
	for _, row := range Cells(img, covered) {
		for _, c := range row {
			switch c {
			case CellMarked:
				buf.WriteRune(mark)
			case CellDark:
				buf.WriteRune(raster.Dark.Rune())
			default:
				buf.WriteRune(raster.Light.Rune())
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
