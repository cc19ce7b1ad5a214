package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// cyclesCommand creates the "cycles" command for cycle detection.
func (c *CLI) cyclesCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "cycles [graph-file]",
		Short: "Detect cycles in a directed graph",
		Long: `Detect cycles in a directed graph using depth-first search.

At most one cycle is reported per search root; the command answers whether
the graph is cyclic and shows a witness for each cyclic region, not an
exhaustive enumeration.

Examples:
  grapple cycles graph.json
  cat graph.json | grapple cycles`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(argOrEmpty(args))
			if err != nil {
				return err
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(c.Logger)
			result, cached, err := runner.Cycles(cmd.Context(), g)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Checked %d nodes", len(g.Nodes)))

			if result.HasCycle {
				printWarning("Found %d cycle(s)", len(result.Cycles))
				for _, cycle := range result.Cycles {
					printDetail("%s", strings.Join(cycle, " → "))
				}
			} else {
				printSuccess("Graph is acyclic")
			}
			printStats(len(g.Nodes), len(g.Edges), cached)

			return writeResult(result, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the result cache")

	return cmd
}
