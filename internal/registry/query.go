package registry

import (
	"fmt"
	"strings"
	"time"
)

// Modules returns the module list, optionally filtered by type tag. Pass ""
// for no filter. Filtering by a tag outside the recognized set is a usage
// error, distinct from a valid tag that simply has no modules (empty result).
func (m *Manager) Modules(moduleType string) ([]Module, error) {
	if moduleType == "" {
		return m.modules, nil
	}
	if !IsValidType(moduleType) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, moduleType)
	}

	matched := []Module{}
	for _, mod := range m.modules {
		if mod.Type == moduleType {
			matched = append(matched, mod)
		}
	}
	return matched, nil
}

// Module returns the first module (in scan order) whose name matches exactly.
// Duplicate names across type folders are not disambiguated.
func (m *Manager) Module(name string) (Module, bool) {
	for _, mod := range m.modules {
		if mod.Name == name {
			return mod, true
		}
	}
	return Module{}, false
}

// ModuleDependencies returns a module's dependency list. A missing module is
// not an error here; it yields an empty list.
func (m *Manager) ModuleDependencies(name string) []string {
	mod, ok := m.Module(name)
	if !ok {
		return []string{}
	}
	return mod.Dependencies
}

// FindDependents returns every module with a dependency entry referencing
// name. An entry matches when it contains name as a substring or, read as a
// slash-delimited path, ends in name. The substring match is intentionally
// loose: "Combat" also matches "CombatSystem".
func (m *Manager) FindDependents(name string) []Module {
	dependents := []Module{}
	for _, mod := range m.modules {
		for _, dep := range mod.Dependencies {
			if strings.Contains(dep, name) || strings.HasSuffix(dep, "/"+name) {
				dependents = append(dependents, mod)
				break
			}
		}
	}
	return dependents
}

// Summary is an aggregate view of the registry, computed fresh on request.
type Summary struct {
	TotalModules  int
	ModulesByType map[string]int
	WithYAML      int
	WithoutYAML   int
	LastScan      *time.Time
	ProjectPath   string
}

// ScanSummary derives a Summary from the current module list.
func (m *Manager) ScanSummary() Summary {
	counts := map[string]int{}
	withYAML := 0
	for _, mod := range m.modules {
		counts[mod.Type]++
		if mod.HasYAML {
			withYAML++
		}
	}

	return Summary{
		TotalModules:  len(m.modules),
		ModulesByType: counts,
		WithYAML:      withYAML,
		WithoutYAML:   len(m.modules) - withYAML,
		LastScan:      m.lastScan,
		ProjectPath:   m.projectPath,
	}
}
