package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/unityreg/cli/internal/output"
)

// newInfoCmd creates the info command.
func newInfoCmd() *cobra.Command {
	var outputFormat string

	c := &cobra.Command{
		Use:   "info <module-name>",
		Short: "Show details for a single module",
		Long:  `Looks a module up by exact name. With duplicate names the first match in scan order wins.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := validateOutputFormat(outputFormat); err != nil {
				return err
			}

			m := newManager()
			mod, ok := m.Module(args[0])
			if !ok {
				return fmt.Errorf("module %q not found in registry", args[0])
			}

			switch outputFormat {
			case "yaml":
				data, err := yaml.Marshal(mod)
				if err != nil {
					return fmt.Errorf("marshaling module: %w", err)
				}
				fmt.Fprint(c.OutOrStdout(), string(data))
				return nil
			case "json":
				data, err := json.MarshalIndent(mod, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling module: %w", err)
				}
				fmt.Fprintln(c.OutOrStdout(), string(data))
				return nil
			}

			out := c.OutOrStdout()
			fmt.Fprintf(out, "%s\n", output.StyleSummary.Render(mod.Name))
			fmt.Fprintf(out, "  Type: %s\n", mod.Type)
			fmt.Fprintf(out, "  Path: %s\n", mod.Path)
			fmt.Fprintf(out, "  Descriptor: %v\n", mod.HasYAML)
			if mod.Version != nil {
				fmt.Fprintf(out, "  Version: %s\n", *mod.Version)
			}
			if mod.Description != nil {
				fmt.Fprintf(out, "  Description: %s\n", *mod.Description)
			}
			if mod.Assembly != nil {
				fmt.Fprintf(out, "  Assembly: %s\n", *mod.Assembly)
			}
			if len(mod.Dependencies) > 0 {
				fmt.Fprintf(out, "  Dependencies: %s\n", strings.Join(mod.Dependencies, ", "))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, yaml, json)")

	return c
}
