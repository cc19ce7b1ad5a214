package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/dkreuer/grapple/pkg/errors"
)

// pathCommand creates the "path" command for hop-shortest path finding.
func (c *CLI) pathCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "path <from> <to> [graph-file]",
		Short: "Find the shortest path between two nodes",
		Long: `Find the path with the fewest hops between two nodes using
breadth-first search. The reported distance is the sum of edge weights
along that path; unweighted edges count as 1.

Examples:
  grapple path api db graph.json
  cat graph.json | grapple path api db`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := args[0], args[1]
			if err := apperrors.ValidateNodeID(from); err != nil {
				return err
			}
			if err := apperrors.ValidateNodeID(to); err != nil {
				return err
			}

			var file string
			if len(args) == 3 {
				file = args[2]
			}
			g, err := readGraph(file)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(c.Logger)
			result, cached, err := runner.Path(cmd.Context(), g, from, to)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Searched %d nodes", len(g.Nodes)))

			if result.Exists {
				printSuccess("Path found with %d hop(s)", len(result.Path)-1)
				printDetail("%s", strings.Join(result.Path, " → "))
				if result.Distance != nil {
					printDetail("distance: %g", *result.Distance)
				}
			} else {
				printInfo("No path from %s to %s", from, to)
			}
			printStats(len(g.Nodes), len(g.Edges), cached)

			return writeResult(result, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the result cache")

	return cmd
}
