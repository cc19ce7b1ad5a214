package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// buildCommand creates the "build" command for constructing a graph from
// relationship lists.
func (c *CLI) buildCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build [relationships-file]",
		Short: "Build a graph from a relationship list",
		Long: `Build a directed graph from a JSON array of relationships.

Nodes are deduplicated in first-seen order; every relationship becomes one
edge with its confidence carried over as the edge weight.

Examples:
  grapple build relationships.json
  grapple build relationships.json -o graph.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rels, err := readRelationships(argOrEmpty(args))
			if err != nil {
				return err
			}

			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(c.Logger)
			g := runner.Build(cmd.Context(), rels)
			prog.done(fmt.Sprintf("Built graph with %d nodes and %d edges", len(g.Nodes), len(g.Edges)))

			printStats(len(g.Nodes), len(g.Edges), false)
			printNextStep("Check for cycles", "grapple cycles graph.json")

			return writeResult(g, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}
