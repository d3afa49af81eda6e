package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilestitch/pkg/pipeline"
)

// renderFlags are the output flags shared by solve and render.
type renderFlags struct {
	output   string
	formats  string
	mark     string
	motif    string
	scale    int
	detailed bool
	noCache  bool
	refresh  bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): txt (default), png, json, dot, svg, pdf (comma-separated)")
	cmd.Flags().StringVar(&f.mark, "mark", pipeline.DefaultMark, "character replacing motif cells in txt output")
	cmd.Flags().StringVar(&f.motif, "motif", "", "motif file (default: sea monster)")
	cmd.Flags().IntVar(&f.scale, "scale", pipeline.DefaultScale, "pixel size of png output")
	cmd.Flags().BoolVar(&f.detailed, "detailed", false, "label adjacency graphs with neighbour counts and orientations")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute cached results")
}

// pipelineOptions merges flags over the loaded config. Only flags set on the
// command line override config values.
func (c *CLI) pipelineOptions(cmd *cobra.Command, f *renderFlags) (pipeline.Options, error) {
	cfg := c.Config
	opts := pipeline.Options{
		Formats:  append([]string(nil), cfg.Formats...),
		Mark:     cfg.Mark,
		Scale:    cfg.Scale,
		Detailed: f.detailed,
		Refresh:  f.refresh,
		Logger:   c.Logger,
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if flags.Changed("mark") {
		opts.Mark = f.mark
	}
	if flags.Changed("scale") {
		opts.Scale = f.scale
	}

	motifPath := cfg.MotifFile
	if flags.Changed("motif") {
		motifPath = f.motif
	}
	m, err := loadMotif(motifPath)
	if err != nil {
		return opts, err
	}
	opts.Motif = m

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}

func (c *CLI) solveCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "solve <tiles-file|->",
		Short: "Reassemble tiles and search the image for the motif",
		Long: `Solve arranges the tiles into a square image, strips their borders and
searches every orientation of the result for the motif. The water roughness
is the number of dark pixels outside any motif occurrence.

Tiles are read from the file argument, or from stdin when it is "-".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.pipelineOptions(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runSolve(cmd.Context(), args[0], flags, opts)
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, input string, flags renderFlags, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)

	data, err := c.readInput(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Solving...")
	spinner.Start()
	result, err := runner.Execute(ctx, data, opts)
	spinner.Stop()
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	paths, err := c.writeArtifacts(result.Solved, result.Artifacts, opts, input, flags.output)
	if err != nil {
		return err
	}
	if len(paths) > 0 {
		prog.done(fmt.Sprintf("Wrote %d artifacts", len(paths)))
	}

	printSolved(result.Solved, result.CacheInfo.SolveHit)
	for _, p := range paths {
		printFile(p)
	}
	if input != stdinPath {
		printNextStep("Explore it interactively", appName+" view "+input)
	}
	return nil
}

func printSolved(s *pipeline.Solved, cached bool) {
	printSuccess("Solved %d×%d grid", s.Grid.Size, s.Grid.Size)
	printKeyValue("Corners", s.CornerProduct)
	if s.Match != nil {
		printKeyValue("Motif", fmt.Sprintf("%s (%s)", s.Match.Motif, s.Match.Orientation))
	}
	printKeyValue("Roughness", s.Roughness())
	printStats(len(s.Tiles), s.Matches(), cached)
}
