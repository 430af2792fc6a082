package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and returns combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// setupProject creates a Unity-shaped project and isolates the data dir and
// config file in temp locations.
func setupProject(t *testing.T) string {
	t.Helper()
	project := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(project, "Assets", "_Core", "GameLoop"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(project, "Assets", "Features", "Combat"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(project, "Assets", "Features", "Combat", "module.yaml"),
		[]byte("dependencies:\n  - GameLoop\n"), 0o644))

	t.Setenv("UNITYREG_DATA_DIR", filepath.Join(t.TempDir(), "data"))
	t.Setenv("UNITYREG_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))
	return project
}

func TestScanCommand(t *testing.T) {
	project := setupProject(t)

	t.Run("scan without save does not persist", func(t *testing.T) {
		out, err := runCLI(t, "scan", "--project", project)
		require.NoError(t, err)
		assert.Contains(t, out, "Scan complete: 2 modules found")

		_, statErr := os.Stat(filepath.Join(os.Getenv("UNITYREG_DATA_DIR"), "unity_module_registry.yaml"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("scan with save persists the registry", func(t *testing.T) {
		out, err := runCLI(t, "scan", "--save", "--project", project)
		require.NoError(t, err)
		assert.Contains(t, out, "Registry refreshed: 2 modules found.")

		_, statErr := os.Stat(filepath.Join(os.Getenv("UNITYREG_DATA_DIR"), "unity_module_registry.yaml"))
		assert.NoError(t, statErr)
	})

	t.Run("scan fails without a project path", func(t *testing.T) {
		_, err := runCLI(t, "scan")
		assert.Error(t, err)
	})
}

func TestListCommand(t *testing.T) {
	project := setupProject(t)
	_, err := runCLI(t, "scan", "--save", "--project", project)
	require.NoError(t, err)

	t.Run("json output", func(t *testing.T) {
		out, err := runCLI(t, "list", "-o", "json")
		require.NoError(t, err)

		var modules []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &modules))
		require.Len(t, modules, 2)
		assert.Equal(t, "GameLoop", modules[0]["name"])
		assert.Equal(t, "Combat", modules[1]["name"])
	})

	t.Run("type filter", func(t *testing.T) {
		out, err := runCLI(t, "list", "--type", "feature", "-o", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "Combat")
		assert.NotContains(t, out, "GameLoop")
	})

	t.Run("unknown type is a usage error", func(t *testing.T) {
		_, err := runCLI(t, "list", "--type", "bogus_type")
		assert.Error(t, err)
	})

	t.Run("invalid output format", func(t *testing.T) {
		_, err := runCLI(t, "list", "-o", "xml")
		assert.Error(t, err)
	})
}

func TestInfoCommand(t *testing.T) {
	project := setupProject(t)
	_, err := runCLI(t, "scan", "--save", "--project", project)
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		out, err := runCLI(t, "info", "Combat")
		require.NoError(t, err)
		assert.Contains(t, out, "Combat")
		assert.Contains(t, out, "feature")
	})

	t.Run("not found", func(t *testing.T) {
		_, err := runCLI(t, "info", "Nope")
		assert.Error(t, err)
	})
}

func TestDepsCommand(t *testing.T) {
	project := setupProject(t)
	_, err := runCLI(t, "scan", "--save", "--project", project)
	require.NoError(t, err)

	t.Run("dependencies", func(t *testing.T) {
		out, err := runCLI(t, "deps", "Combat")
		require.NoError(t, err)
		assert.Contains(t, out, "GameLoop")
	})

	t.Run("dependents", func(t *testing.T) {
		out, err := runCLI(t, "deps", "GameLoop", "--reverse")
		require.NoError(t, err)
		assert.Contains(t, out, "Combat (feature)")
	})

	t.Run("unknown module yields empty, not error", func(t *testing.T) {
		out, err := runCLI(t, "deps", "Nope")
		require.NoError(t, err)
		assert.Contains(t, out, "no declared dependencies")
	})
}

func TestSummaryCommand(t *testing.T) {
	project := setupProject(t)
	_, err := runCLI(t, "scan", "--save", "--project", project)
	require.NoError(t, err)

	out, err := runCLI(t, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 2 modules (1 with module.yaml, 1 without)")
}

func TestReportCommand(t *testing.T) {
	project := setupProject(t)
	_, err := runCLI(t, "scan", "--save", "--project", project)
	require.NoError(t, err)

	out, err := runCLI(t, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")
	assert.Contains(t, out, "modules: 2")

	reportFile := filepath.Join(os.Getenv("UNITYREG_DATA_DIR"), "module_report.md")
	data, err := os.ReadFile(reportFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Unity Module Registry Report")
}

func TestDiffCommand(t *testing.T) {
	project := setupProject(t)
	_, err := runCLI(t, "scan", "--save", "--project", project)
	require.NoError(t, err)

	t.Run("unchanged tree is up to date", func(t *testing.T) {
		out, err := runCLI(t, "diff", "--project", project)
		require.NoError(t, err)
		assert.Contains(t, out, "Registry is up to date.")
	})

	t.Run("new module shows up", func(t *testing.T) {
		require.NoError(t, os.MkdirAll(filepath.Join(project, "Assets", "Levels", "Island"), 0o755))

		out, err := runCLI(t, "diff", "--project", project)
		require.NoError(t, err)
		assert.Contains(t, out, "Island")
	})
}

func TestConfigCommands(t *testing.T) {
	t.Setenv("UNITYREG_DATA_DIR", filepath.Join(t.TempDir(), "data"))
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("UNITYREG_CONFIG", configFile)

	t.Run("init writes a starter file", func(t *testing.T) {
		out, err := runCLI(t, "config", "init")
		require.NoError(t, err)
		assert.Contains(t, out, "Config written to")

		_, statErr := os.Stat(configFile)
		assert.NoError(t, statErr)
	})

	t.Run("init refuses to overwrite without force", func(t *testing.T) {
		_, err := runCLI(t, "config", "init")
		assert.Error(t, err)

		_, err = runCLI(t, "config", "init", "--force")
		assert.NoError(t, err)
	})

	t.Run("show prints effective config", func(t *testing.T) {
		out, err := runCLI(t, "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, "dataDir:")
	})
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("UNITYREG_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "unityreg v")
}
