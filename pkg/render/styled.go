package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tilestitch/pkg/motif"
	"github.com/matzehuels/tilestitch/pkg/raster"
)

var (
	styleLight  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	styleDark   = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	styleMarked = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

// Styled renders img for a terminal. Runs of equal cells share one style
// sequence. Colours are dropped automatically when the output is not a
// terminal.
func Styled(img *raster.Block, covered []motif.Point, mark rune) string {
	glyph := map[Cell]string{
		CellLight:  string(raster.Light.Rune()),
		CellDark:   string(raster.Dark.Rune()),
		CellMarked: string(mark),
	}
	style := map[Cell]lipgloss.Style{
		CellLight:  styleLight,
		CellDark:   styleDark,
		CellMarked: styleMarked,
	}

	lines := make([]string, 0, img.Height())
	for _, row := range Cells(img, covered) {
		var sb strings.Builder
		for start := 0; start < len(row); {
			end := start
			for end < len(row) && row[end] == row[start] {
				end++
			}
			sb.WriteString(style[row[start]].Render(strings.Repeat(glyph[row[start]], end-start)))
			start = end
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}
