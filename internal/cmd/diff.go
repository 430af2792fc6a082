package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/unityreg/cli/internal/output"
)

// emptyRegistryDoc stands in for the persisted document when none has been
// saved yet, so the diff shows everything a first save would write.
const emptyRegistryDoc = `version: "1.0.0"
project_path: null
last_scan: null
modules: []
`

// newDiffCmd creates the diff command.
func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Diff a fresh scan against the persisted registry",
		Long: `Scans the project without touching the persisted document and shows a
YAML-aware diff between the stored registry and what a scan finds now.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			stored, err := os.ReadFile(registryPath())
			if err != nil {
				if !os.IsNotExist(err) {
					return fmt.Errorf("reading registry: %w", err)
				}
				output.Debug("no persisted registry, diffing against empty document")
				stored = []byte(emptyRegistryDoc)
			}

			m := newManager()
			if _, err := m.Scan(); err != nil {
				return err
			}
			fresh, err := m.MarshalDocument()
			if err != nil {
				return fmt.Errorf("serializing scan result: %w", err)
			}

			diff, err := diffRegistryYAML(stored, fresh)
			if err != nil {
				return err
			}
			if diff == "" {
				fmt.Fprintln(c.OutOrStdout(), "Registry is up to date.")
				return nil
			}

			fmt.Fprintln(c.OutOrStdout(), diff)
			return nil
		},
	}
}

// diffRegistryYAML computes a human-readable dyff report between two registry
// documents. The last_scan timestamp changes on every scan and is stripped
// before comparing.
func diffRegistryYAML(stored, fresh []byte) (string, error) {
	storedInput, err := parseRegistryInput("stored", stored)
	if err != nil {
		return "", fmt.Errorf("parsing stored registry: %w", err)
	}
	freshInput, err := parseRegistryInput("scanned", fresh)
	if err != nil {
		return "", fmt.Errorf("parsing scan result: %w", err)
	}

	report, err := dyff.CompareInputFiles(storedInput, freshInput)
	if err != nil {
		return "", fmt.Errorf("comparing registries: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	reportWriter := &dyff.HumanReport{
		Report:       report,
		NoTableStyle: !output.IsTTY(),
		OmitHeader:   true,
	}
	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}

// parseRegistryInput strips volatile fields and loads the document for dyff.
func parseRegistryInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name, Documents: nil}, nil
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ytbx.InputFile{}, err
	}
	delete(doc, "last_scan")

	clean, err := yaml.Marshal(doc)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	docs, err := ytbx.LoadYAMLDocuments(clean)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{Location: name, Documents: docs}, nil
}
