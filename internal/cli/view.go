package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tilestitch/pkg/assemble"
	"github.com/matzehuels/tilestitch/pkg/errors"
	"github.com/matzehuels/tilestitch/pkg/motif"
	"github.com/matzehuels/tilestitch/pkg/pipeline"
	"github.com/matzehuels/tilestitch/pkg/raster"
	"github.com/matzehuels/tilestitch/pkg/render"
)

func (c *CLI) viewCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "view <tiles-file|->",
		Short: "Explore the stitched image in the terminal",
		Long: `View solves the puzzle and opens an interactive viewer on the stitched
image, starting in the orientation where the motif was found.

Keys: r rotate · f flip · m toggle motif marks · 0 reset · q quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.pipelineOptions(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runView(cmd.Context(), args[0], flags, opts)
		},
	}
	cmd.Flags().StringVar(&flags.mark, "mark", pipeline.DefaultMark, "character replacing motif cells")
	cmd.Flags().StringVar(&flags.motif, "motif", "", "motif file (default: sea monster)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

func (c *CLI) runView(ctx context.Context, input string, flags renderFlags, opts pipeline.Options) error {
	data, err := c.readInput(input)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	solved, _, err := runner.SolveWithCacheInfo(ctx, data, opts)
	if err != nil {
		return err
	}
	// The viewer tracks orientation relative to the solver's layout.
	base, err := assemble.Assemble(solved.Grid)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "assemble image")
	}
	start := raster.Identity
	if solved.Match != nil {
		start = solved.Match.Orientation
	}

	v := newViewer(base, opts.Motif, opts.MarkRune(), start)
	_, err = tea.NewProgram(v, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	return err
}

// =============================================================================
// viewer - interactive image model
// =============================================================================

var (
	viewerHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	viewerValueStyle  = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
	viewerKeyStyle    = lipgloss.NewStyle().Foreground(colorCyan)
)

// viewer shows the image in any of its eight orientations and re-runs the
// motif search after every transform.
type viewer struct {
	base   *raster.Block
	motif  *motif.Motif
	mark   rune
	start  raster.Orientation
	orient raster.Orientation

	img       *raster.Block
	positions []motif.Point
	covered   []motif.Point
	marks     bool
	quitting  bool
}

func newViewer(base *raster.Block, m *motif.Motif, mark rune, start raster.Orientation) *viewer {
	v := &viewer{base: base, motif: m, mark: mark, start: start, orient: start, marks: true}
	v.refresh()
	return v
}

func (v *viewer) refresh() {
	v.img = v.base.Clone()
	v.img.Apply(v.orient)
	v.positions = v.motif.Find(v.img)
	v.covered = v.motif.Cover(v.positions)
}

func (v *viewer) Init() tea.Cmd {
	return nil
}

func (v *viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		v.quitting = true
		return v, tea.Quit
	case "r":
		v.orient = v.orient.AfterRotate()
	case "f":
		v.orient = v.orient.AfterFlip()
	case "0":
		v.orient = v.start
	case "m":
		v.marks = !v.marks
		return v, nil
	default:
		return v, nil
	}
	v.refresh()
	return v, nil
}

func (v *viewer) View() string {
	if v.quitting {
		return ""
	}
	var b strings.Builder

	b.WriteString(StyleTitle.Render(v.motif.Name))
	b.WriteString("\n\n")

	var covered []motif.Point
	if v.marks {
		covered = v.covered
	}
	b.WriteString(render.Styled(v.img, covered, v.mark))
	b.WriteString("\n\n")

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Orientation", "Matches", "Roughness", "Marks").
		Row(v.orient.String(),
			strconv.Itoa(len(v.positions)),
			strconv.Itoa(motif.Roughness(v.img, v.covered)),
			onOff(v.marks)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return viewerHeaderStyle
			}
			return viewerValueStyle
		})
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(helpLine())
	b.WriteString("\n")

	return b.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func helpLine() string {
	keys := []struct{ key, desc string }{
		{"r", "rotate"}, {"f", "flip"}, {"m", "marks"}, {"0", "reset"}, {"q", "quit"},
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s %s", viewerKeyStyle.Render(k.key), StyleDim.Render(k.desc))
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}
