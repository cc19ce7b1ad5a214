package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// sortCommand creates the "sort" command for topological ordering.
func (c *CLI) sortCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "sort [graph-file]",
		Short: "Topologically sort a directed graph",
		Long: `Topologically sort a directed graph using Kahn's algorithm.

The graph is read as JSON from the given file, or from stdin when no file
is given. When the graph contains a cycle the result is partial and the
hasCycle flag is set.

Examples:
  grapple sort graph.json
  cat graph.json | grapple sort -o sorted.json`,
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
			result, cached, err := runner.Sort(cmd.Context(), g)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Sorted %d of %d nodes", len(result.Sorted), len(g.Nodes)))

			if result.HasCycle {
				printWarning("Graph contains a cycle; ordering is partial")
				printNextStep("Inspect cycles", "grapple cycles "+argOrEmpty(args))
			}
			printStats(len(g.Nodes), len(g.Edges), cached)

			return writeResult(result, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the result cache")

	return cmd
}

// argOrEmpty returns the first positional argument, or "" when absent.
func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
