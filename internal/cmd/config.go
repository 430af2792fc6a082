package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/unityreg/cli/internal/config"
)

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage unityreg configuration",
	}

	c.AddCommand(newConfigInitCmd())
	c.AddCommand(newConfigShowCmd())

	return c
}

// newConfigInitCmd writes a starter config file.
func newConfigInitCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			path, err := config.GetConfigFile()
			if err != nil {
				return fmt.Errorf("resolving config file path: %w", err)
			}
			if configFlag != "" {
				path = configFlag
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
			}

			starter := (&config.Config{}).WithDefaults()
			data, err := yaml.Marshal(starter)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("creating config directory: %w", err)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			fmt.Fprintf(c.OutOrStdout(), "Config written to %s\n", path)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return c
}

// newConfigShowCmd prints the effective configuration after flag and env
// precedence is applied.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			fmt.Fprint(c.OutOrStdout(), string(data))
			return nil
		},
	}
}
