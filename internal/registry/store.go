package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/unityreg/cli/internal/output"
)

// registryDoc is the on-disk shape of the registry. ProjectPath and LastScan
// serialize as null when unset, matching the documented document format.
type registryDoc struct {
	Version     string   `yaml:"version"`
	ProjectPath *string  `yaml:"project_path"`
	LastScan    *string  `yaml:"last_scan"`
	Modules     []Module `yaml:"modules"`
}

// loadRegistry restores state from the persisted document, if any. Corruption
// of any kind — unreadable file, bad YAML, malformed timestamp — resets to an
// empty registry with a warning instead of failing construction.
func (m *Manager) loadRegistry() {
	data, err := os.ReadFile(m.registryPath)
	if err != nil {
		if os.IsNotExist(err) {
			output.Debug("no existing registry found", "path", m.registryPath)
		} else {
			output.Warn("failed to read registry, starting empty", "path", m.registryPath, "error", err)
		}
		return
	}

	version, lastScan, modules, err := decodeRegistry(data)
	if err != nil {
		output.Warn("failed to load registry, starting empty", "path", m.registryPath, "error", err)
		m.version = defaultRegistryVersion
		m.lastScan = nil
		m.modules = []Module{}
		return
	}

	m.version = version
	m.lastScan = lastScan
	m.modules = modules
	output.Debug("loaded registry", "modules", len(m.modules))
}

// decodeRegistry is the single deserialization boundary for the persisted
// document. All corruption surfaces here as one error for loadRegistry to
// handle.
func decodeRegistry(data []byte) (string, *time.Time, []Module, error) {
	var doc registryDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", nil, nil, fmt.Errorf("parsing registry document: %w", err)
	}

	version := doc.Version
	if version == "" {
		version = defaultRegistryVersion
	}

	var lastScan *time.Time
	if doc.LastScan != nil && *doc.LastScan != "" {
		t, err := time.Parse(time.RFC3339Nano, *doc.LastScan)
		if err != nil {
			return "", nil, nil, fmt.Errorf("parsing last_scan timestamp: %w", err)
		}
		lastScan = &t
	}

	modules := doc.Modules
	if modules == nil {
		modules = []Module{}
	}
	for i := range modules {
		if modules[i].Dependencies == nil {
			modules[i].Dependencies = []string{}
		}
	}

	return version, lastScan, modules, nil
}

// Save persists the current registry to its configured path, creating parent
// directories as needed. Unlike load, failures here are not swallowed: the
// caller must observe them.
func (m *Manager) Save() error {
	data, err := m.MarshalDocument()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSaveRegistry, err)
	}

	if err := os.MkdirAll(filepath.Dir(m.registryPath), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveRegistry, err)
	}
	if err := os.WriteFile(m.registryPath, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveRegistry, err)
	}

	output.Debug("registry saved", "path", m.registryPath, "modules", len(m.modules))
	return nil
}

// MarshalDocument serializes the current registry to its document form
// without writing it anywhere. Used by Save and by diffing a fresh scan
// against the stored document.
func (m *Manager) MarshalDocument() ([]byte, error) {
	doc := registryDoc{
		Version: m.version,
		Modules: m.modules,
	}
	if doc.Modules == nil {
		doc.Modules = []Module{}
	}
	if m.projectPath != "" {
		p := m.projectPath
		doc.ProjectPath = &p
	}
	if m.lastScan != nil {
		ts := m.lastScan.Format(time.RFC3339Nano)
		doc.LastScan = &ts
	}

	return yaml.Marshal(&doc)
}
