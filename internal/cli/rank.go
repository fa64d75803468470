// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/junction/edgerank"
	"github.com/katalvlaran/junction/internal/config"
)

// rankCommand creates the rank command printing the closest pairs.
func (c *CLI) rankCommand() *cobra.Command {
	flags := config.DefaultRank()

	cmd := &cobra.Command{
		Use:   "rank [points.txt]",
		Short: "Print the closest pairs in the order they would be wired",
		Long: `Rank prints the first --limit edges of the ranking, one per line:

  <rank> <a> <b> <squared distance>  <point a> <point b>

Pass --limit 0 to print every pair.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.Validate(); err != nil {
				return err
			}

			set, err := readPoints(cmd, args)
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			edges, err := edgerank.Rank(set,
				edgerank.WithWorkers(flags.Workers),
				edgerank.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Ranked %d edges over %d points", len(edges), set.Len()))

			if flags.Limit > 0 && flags.Limit < len(edges) {
				edges = edges[:flags.Limit]
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			for i, e := range edges {
				fmt.Fprintf(w, "%d %d %d %d  %s %s\n", i+1, e.A, e.B, e.Weight, set.At(e.A), set.At(e.B))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "n", flags.Limit, "number of edges to print (0 = all)")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", flags.Workers, "goroutines used to rank edges")

	return cmd
}
