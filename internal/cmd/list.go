package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/unityreg/cli/internal/output"
	"github.com/unityreg/cli/internal/registry"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	var (
		typeFilter   string
		outputFormat string
	)

	c := &cobra.Command{
		Use:   "list",
		Short: "List registered modules",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := validateOutputFormat(outputFormat); err != nil {
				return err
			}

			m := newManager()
			modules, err := m.Modules(typeFilter)
			if err != nil {
				return err
			}

			switch outputFormat {
			case "yaml":
				data, err := yaml.Marshal(modules)
				if err != nil {
					return fmt.Errorf("marshaling modules: %w", err)
				}
				fmt.Fprint(c.OutOrStdout(), string(data))
			case "json":
				data, err := json.MarshalIndent(modules, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling modules: %w", err)
				}
				fmt.Fprintln(c.OutOrStdout(), string(data))
			default:
				fmt.Fprintln(c.OutOrStdout(), renderModuleTable(modules))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&typeFilter, "type", "t", "", "Filter by module type (core, manager, shared, feature, level, thirdparty, extension)")
	c.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, yaml, json)")

	return c
}

// validateOutputFormat rejects anything outside table, yaml, json.
func validateOutputFormat(format string) error {
	switch format {
	case "table", "yaml", "json":
		return nil
	default:
		return fmt.Errorf("invalid output format %q, use table, yaml, or json", format)
	}
}

// renderModuleTable renders modules as a styled table.
func renderModuleTable(modules []registry.Module) string {
	t := output.NewTable("NAME", "TYPE", "PATH", "YAML", "DEPS")
	for _, mod := range modules {
		yamlMark := ""
		if mod.HasYAML {
			yamlMark = "yes"
		}
		t.Row(mod.Name, mod.Type, mod.Path, yamlMark, strings.Join(mod.Dependencies, ", "))
	}
	return t.String()
}
