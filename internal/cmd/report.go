package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unityreg/cli/internal/report"
)

// newReportCmd creates the report command.
func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Write a Markdown report of the registry",
		Long: `Renders the registry as a Markdown document: per-type counts, a mermaid
dependency graph, modules missing a module.yaml descriptor, and orphaned
modules. The report is written next to the persisted registry.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			m := newManager()

			res, err := report.Generate(m, reportPath())
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			fmt.Fprintf(out, "Report written to %s\n", res.Path)
			fmt.Fprintf(out, "  modules: %d, missing descriptors: %d, orphaned: %d, dependency edges: %d\n",
				res.TotalModules, res.MissingDescriptor, res.Orphaned, res.DependencyEdges)
			return nil
		},
	}
}
