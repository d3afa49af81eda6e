package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilestitch/pkg/pipeline"
)

func (c *CLI) cornersCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "corners <tiles-file|->",
		Short: "Find the corner tiles and multiply their ids",
		Long: `Corners classifies tiles by how many of their borders match another tile.
Exactly four tiles have two unmatched borders; their ids and the product of
those ids are printed. The grid is not solved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := c.readInput(args[0])
			if err != nil {
				return err
			}
			report, err := pipeline.Corners(data)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("classified tiles", "corners", report.Corners, "grid", report.GridSize)

			if asJSON {
				enc := json.NewEncoder(c.out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			ids := make([]string, len(report.Corners))
			for i, id := range report.Corners {
				ids[i] = strconv.Itoa(id)
			}
			printKeyValue("Grid", fmt.Sprintf("%d×%d", report.GridSize, report.GridSize))
			printKeyValue("Corners", strings.Join(ids, ", "))
			printKeyValue("Product", report.Product)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}
