package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/unityreg/cli/internal/output"
)

// descriptorFile is the per-module metadata file name.
const descriptorFile = "module.yaml"

// descriptor is the recognized subset of module.yaml. Unrecognized keys are
// ignored by the decoder.
type descriptor struct {
	Name         string   `yaml:"name"`
	Version      *string  `yaml:"version"`
	Description  *string  `yaml:"description"`
	Dependencies []string `yaml:"dependencies"`
	Assembly     *string  `yaml:"assembly"`
}

// Scan walks the project's Assets tree and replaces the in-memory module
// list with what it finds. Only immediate subfolders of recognized type
// folders are treated as modules; folders named with a leading "." or "~"
// are skipped. Scan records a new last-scan timestamp but does not persist —
// call Save separately.
//
// Preconditions are checked before any state is touched, so a failed Scan
// leaves the previous module list intact.
func (m *Manager) Scan() ([]Module, error) {
	if m.projectPath == "" {
		return nil, fmt.Errorf("%w: no path configured", ErrProjectPath)
	}
	if _, err := os.Stat(m.projectPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrProjectPath, m.projectPath)
	}

	assetsPath := filepath.Join(m.projectPath, "Assets")
	if _, err := os.Stat(assetsPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAssetsMissing, assetsPath)
	}

	output.Debug("scanning project", "path", m.projectPath)

	discovered := []Module{}
	for _, tf := range moduleTypeFolders {
		typeDir := filepath.Join(assetsPath, tf.Folder)
		entries, err := os.ReadDir(typeDir)
		if err != nil {
			output.Debug("type folder not found, skipping", "path", typeDir)
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			name := entry.Name()
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~") {
				continue
			}

			mod := m.scanModuleFolder(filepath.Join(typeDir, name), tf.Type)
			discovered = append(discovered, mod)
			output.Debug("discovered module", "name", mod.Name, "type", mod.Type)
		}
	}

	m.modules = discovered
	now := time.Now()
	m.lastScan = &now

	output.Info("scan complete", "modules", len(m.modules))
	return m.modules, nil
}

// scanModuleFolder builds one Module from a folder, overlaying module.yaml
// metadata when present. A malformed descriptor is logged and the defaults
// kept; it never fails the scan.
func (m *Manager) scanModuleFolder(folder, moduleType string) Module {
	rel, err := filepath.Rel(m.projectPath, folder)
	if err != nil {
		rel = folder
	}

	descPath := filepath.Join(folder, descriptorFile)
	_, statErr := os.Stat(descPath)
	hasYAML := statErr == nil

	mod := Module{
		Name:         filepath.Base(folder),
		Type:         moduleType,
		Path:         filepath.ToSlash(rel),
		HasYAML:      hasYAML,
		Dependencies: []string{},
	}

	if !hasYAML {
		return mod
	}

	data, err := os.ReadFile(descPath)
	if err != nil {
		output.Warn("failed to read module.yaml", "module", mod.Name, "error", err)
		return mod
	}

	var desc descriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		output.Warn("failed to parse module.yaml", "module", mod.Name, "error", err)
		return mod
	}

	if desc.Name != "" {
		mod.Name = desc.Name
	}
	mod.Version = desc.Version
	mod.Description = desc.Description
	mod.Assembly = desc.Assembly
	if desc.Dependencies != nil {
		mod.Dependencies = desc.Dependencies
	}

	return mod
}
