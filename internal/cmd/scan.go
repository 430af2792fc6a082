package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unityreg/cli/internal/output"
	"github.com/unityreg/cli/internal/registry"
)

// newScanCmd creates the scan command.
func newScanCmd() *cobra.Command {
	var save bool

	c := &cobra.Command{
		Use:   "scan",
		Short: "Scan the Unity project for modules",
		Long: `Walks the project's Assets tree, classifies recognized top-level folders
(_Core, _Managers, _Shared, Features, Levels, ThirdParty, _Extensions) and
records each immediate subfolder as a module, overlaying module.yaml metadata
where present. The previous module list is replaced wholesale.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			m := newManager()

			var modules []registry.Module
			err := output.RunWithSpinner(c.Context(), func() error {
				var scanErr error
				modules, scanErr = m.Scan()
				return scanErr
			}, output.WithTitle("Scanning Unity project..."))
			if err != nil {
				return err
			}

			if save {
				if err := m.Save(); err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "Registry refreshed: %d modules found.\n", len(modules))
				return nil
			}

			fmt.Fprintf(c.OutOrStdout(), "Scan complete: %d modules found (not persisted, use --save).\n", len(modules))
			return nil
		},
	}

	c.Flags().BoolVar(&save, "save", false, "Persist the registry after scanning")

	return c
}
