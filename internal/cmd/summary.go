package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/unityreg/cli/internal/output"
)

// newSummaryCmd creates the summary command.
func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show aggregate registry counts",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			m := newManager()
			s := m.ScanSummary()
			out := c.OutOrStdout()

			if s.ProjectPath != "" {
				fmt.Fprintf(out, "Project: %s\n", output.StyleNoun.Render(s.ProjectPath))
			}
			if s.LastScan != nil {
				fmt.Fprintf(out, "Last scan: %s\n", s.LastScan.Format(time.RFC3339))
			}

			t := output.NewTable("TYPE", "COUNT")
			tags := make([]string, 0, len(s.ModulesByType))
			for tag := range s.ModulesByType {
				tags = append(tags, tag)
			}
			sort.Strings(tags)
			for _, tag := range tags {
				t.Row(tag, strconv.Itoa(s.ModulesByType[tag]))
			}
			fmt.Fprintln(out, t.String())

			fmt.Fprintf(out, "Total: %d modules (%d with module.yaml, %d without)\n",
				s.TotalModules, s.WithYAML, s.WithoutYAML)
			return nil
		},
	}
}
