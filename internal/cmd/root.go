// Package cmd provides CLI command implementations.
package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/unityreg/cli/internal/config"
	"github.com/unityreg/cli/internal/output"
	"github.com/unityreg/cli/internal/registry"
	"github.com/unityreg/cli/internal/report"
)

var (
	// Global flags
	configFlag  string
	projectFlag string
	verboseFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	cfg *config.Config
)

// NewRootCmd creates the root command for the unityreg CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "unityreg",
		Short:         "Unity module registry CLI",
		Long:          `unityreg scans a Unity project's Assets tree for convention-based modules, persists a registry of what it found, and derives dependency and coverage reports.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: UNITYREG_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "", "Unity project root (env: UNITYREG_PROJECT_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newDepsCmd())
	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
// The --project flag overrides any configured project path.
func initializeGlobals() error {
	output.SetupLogging(verboseFlag)

	loaded, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		return err
	}
	if projectFlag != "" {
		loaded.ProjectPath = projectFlag
	}
	cfg = loaded

	output.Debug("configuration loaded", "projectPath", cfg.ProjectPath, "dataDir", cfg.DataDir)
	return nil
}

// newManager constructs the registry manager from the resolved configuration.
func newManager() *registry.Manager {
	return registry.NewManager(registry.Options{
		ProjectPath:  cfg.ProjectPath,
		RegistryPath: registryPath(),
	})
}

// registryPath is the persisted registry document location.
func registryPath() string {
	return filepath.Join(cfg.DataDir, config.RegistryFileName)
}

// reportPath is the report document location, a fixed sibling of the registry.
func reportPath() string {
	return filepath.Join(cfg.DataDir, report.FileName)
}
