package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilestitch/pkg/cache"
	"github.com/matzehuels/tilestitch/pkg/errors"
	pkgio "github.com/matzehuels/tilestitch/pkg/io"
	"github.com/matzehuels/tilestitch/pkg/pipeline"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags renderFlags
		tiles string
	)

	cmd := &cobra.Command{
		Use:   "render <solution.json> --tiles <tiles-file|->",
		Short: "Render a saved solution without solving again",
		Long: `Render rebuilds the grid recorded in a solution document (written by
"solve -f json") from the original tiles, checks the recorded motif
occurrences and writes the requested formats.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.pipelineOptions(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], tiles, flags, opts)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&tiles, "tiles", "", "tile file the solution was computed from (\"-\" for stdin)")
	_ = cmd.MarkFlagRequired("tiles")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, solutionPath, tilesPath string, flags renderFlags, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", solutionPath)

	if err := errors.ValidatePath(solutionPath); err != nil {
		return err
	}
	doc, err := pkgio.ImportSolution(solutionPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "load solution")
	}
	data, err := c.readInput(tilesPath)
	if err != nil {
		return err
	}
	if doc.TilesHash != "" && doc.TilesHash != cache.Hash(data) {
		printWarning("%s was solved from different tile text", solutionPath)
	}

	tiles, idx, err := pipeline.Parse(data)
	if err != nil {
		return err
	}
	solved, err := pipeline.FromSolution(tiles, idx, doc, opts.Motif)
	if err != nil {
		return err
	}
	logger.Debug("restored solution", "id", solved.ID, "grid", solved.Grid.Size, "matches", solved.Matches())

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	artifacts, hit, err := runner.RenderWithCacheInfo(ctx, solved, opts)
	if err != nil {
		return err
	}
	paths, err := c.writeArtifacts(solved, artifacts, opts, solutionPath, flags.output)
	if err != nil {
		return err
	}

	printSolved(solved, hit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}
