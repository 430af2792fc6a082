// Package registry discovers Unity modules by scanning a project's Assets
// tree and maintains a persisted catalog of what it found.
//
// A module is one immediate subfolder of a recognized type folder
// (Assets/_Core, Assets/Features, ...). Each module may carry an optional
// module.yaml descriptor that overlays name, version, description,
// dependencies, and assembly onto the defaults derived from the folder.
package registry

import (
	"path/filepath"
	"time"

	"github.com/unityreg/cli/internal/output"
)

// Module represents a single discovered Unity module.
// Name, Type, and Path are always set; the optional fields are nil when the
// descriptor did not provide them, which round-trips as YAML null.
type Module struct {
	Name         string   `yaml:"name" json:"name"`
	Type         string   `yaml:"type" json:"type"`
	Path         string   `yaml:"path" json:"path"` // relative to the project root, slash-separated
	HasYAML      bool     `yaml:"has_yaml" json:"has_yaml"`
	Version      *string  `yaml:"version" json:"version"`
	Description  *string  `yaml:"description" json:"description"`
	Dependencies []string `yaml:"dependencies" json:"dependencies"`
	Assembly     *string  `yaml:"assembly" json:"assembly"`
}

// defaultRegistryVersion is the document version written for new registries.
const defaultRegistryVersion = "1.0.0"

// Manager owns one in-memory registry and its persisted document.
// There is no global state: two Managers pointing at the same registry path
// are last-writer-wins on Save, with no locking.
type Manager struct {
	projectPath  string // absolute, empty when not configured
	registryPath string

	version  string
	lastScan *time.Time
	modules  []Module
}

// Options configures a Manager.
type Options struct {
	// ProjectPath is the Unity project root. May be empty; Scan then fails
	// until a path is configured.
	ProjectPath string

	// RegistryPath is the persisted registry document location.
	RegistryPath string
}

// NewManager creates a Manager and loads any existing registry document.
// Construction never fails: an unset project path and a corrupt or missing
// registry document are both tolerated (the latter resets to an empty
// registry with a warning).
func NewManager(opts Options) *Manager {
	m := &Manager{
		registryPath: opts.RegistryPath,
		version:      defaultRegistryVersion,
		modules:      []Module{},
	}

	if opts.ProjectPath != "" {
		abs, err := filepath.Abs(opts.ProjectPath)
		if err != nil {
			output.Warn("could not resolve project path", "path", opts.ProjectPath, "error", err)
			abs = opts.ProjectPath
		}
		m.projectPath = abs
	} else {
		output.Debug("project path not configured")
	}

	m.loadRegistry()
	return m
}

// ProjectPath returns the resolved absolute project path, or "" when unset.
func (m *Manager) ProjectPath() string {
	return m.projectPath
}

// RegistryPath returns the persisted document location.
func (m *Manager) RegistryPath() string {
	return m.registryPath
}

// Version returns the registry document version.
func (m *Manager) Version() string {
	return m.version
}

// LastScan returns the time of the most recent scan, or nil if no scan has
// been recorded.
func (m *Manager) LastScan() *time.Time {
	return m.lastScan
}
