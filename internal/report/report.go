// Package report renders the module registry as a Markdown document with
// per-type counts, a mermaid dependency graph, and missing-descriptor and
// orphan listings.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/unityreg/cli/internal/output"
	"github.com/unityreg/cli/internal/registry"
)

// ErrWriteReport indicates an I/O failure while writing the report document.
var ErrWriteReport = errors.New("failed to write report")

// FileName is the report document name, written next to the registry.
const FileName = "module_report.md"

// Result describes a generated report.
type Result struct {
	Path              string
	TotalModules      int
	MissingDescriptor int
	Orphaned          int
	DependencyEdges   int
}

// Generate renders the registry to Markdown and writes it to path, creating
// parent directories as needed.
func Generate(m *registry.Manager, path string) (*Result, error) {
	modules, _ := m.Modules("")
	summary := m.ScanSummary()

	var b strings.Builder

	writeHeader(&b, summary)
	writeCounts(&b, summary)
	edges := writeGraph(&b, modules)
	missing := writeMissingDescriptors(&b, modules)
	orphans := writeOrphans(&b, m, modules)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteReport, err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteReport, err)
	}

	output.Debug("report written", "path", path, "edges", edges)

	return &Result{
		Path:              path,
		TotalModules:      summary.TotalModules,
		MissingDescriptor: missing,
		Orphaned:          orphans,
		DependencyEdges:   edges,
	}, nil
}

func writeHeader(b *strings.Builder, s registry.Summary) {
	b.WriteString("# Unity Module Registry Report\n\n")
	fmt.Fprintf(b, "Generated: %s\n", time.Now().Format(time.RFC3339))
	if s.LastScan != nil {
		fmt.Fprintf(b, "Last scan: %s\n", s.LastScan.Format(time.RFC3339))
	}
	if s.ProjectPath != "" {
		fmt.Fprintf(b, "Project: %s\n", s.ProjectPath)
	}
	b.WriteString("\n")
}

// writeCounts renders one row per recognized type tag, zero counts included,
// sorted alphabetically by tag.
func writeCounts(b *strings.Builder, s registry.Summary) {
	b.WriteString("## Module Counts\n\n")
	b.WriteString("| Type | Count |\n")
	b.WriteString("|------|-------|\n")

	tags := registry.TypeTags()
	sort.Strings(tags)
	for _, tag := range tags {
		fmt.Fprintf(b, "| %s | %d |\n", tag, s.ModulesByType[tag])
	}
	fmt.Fprintf(b, "| **total** | %d |\n\n", s.TotalModules)
}

// writeGraph renders every dependency entry as a directed mermaid edge and
// returns the edge count.
func writeGraph(b *strings.Builder, modules []registry.Module) int {
	b.WriteString("## Dependency Graph\n\n")

	edges := 0
	var g strings.Builder
	for _, mod := range modules {
		for _, dep := range mod.Dependencies {
			target := dep
			if idx := strings.LastIndex(dep, "/"); idx >= 0 {
				target = dep[idx+1:]
			}
			fmt.Fprintf(&g, "    %s --> %s\n", sanitizeID(mod.Name), sanitizeID(target))
			edges++
		}
	}

	if edges == 0 {
		b.WriteString("No dependency edges declared.\n\n")
		return 0
	}

	b.WriteString("```mermaid\ngraph TD\n")
	b.WriteString(g.String())
	b.WriteString("```\n\n")
	return edges
}

func writeMissingDescriptors(b *strings.Builder, modules []registry.Module) int {
	b.WriteString("## Missing Descriptors\n\n")

	missing := []registry.Module{}
	for _, mod := range modules {
		if !mod.HasYAML {
			missing = append(missing, mod)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i].Name < missing[j].Name })

	if len(missing) == 0 {
		b.WriteString("All modules have a module.yaml descriptor.\n\n")
		return 0
	}

	for _, mod := range missing {
		fmt.Fprintf(b, "- %s (`%s`, %s)\n", mod.Name, mod.Path, mod.Type)
	}
	b.WriteString("\n")
	return len(missing)
}

// writeOrphans lists modules with no dependencies and no dependents.
func writeOrphans(b *strings.Builder, m *registry.Manager, modules []registry.Module) int {
	b.WriteString("## Orphaned Modules\n\n")

	orphans := []registry.Module{}
	for _, mod := range modules {
		if len(mod.Dependencies) == 0 && len(m.FindDependents(mod.Name)) == 0 {
			orphans = append(orphans, mod)
		}
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i].Name < orphans[j].Name })

	if len(orphans) == 0 {
		b.WriteString("No orphaned modules found.\n")
		return 0
	}

	for _, mod := range orphans {
		fmt.Fprintf(b, "- %s (%s)\n", mod.Name, mod.Type)
	}
	return len(orphans)
}

// sanitizeID makes a string safe as a mermaid node identifier: every
// character outside [A-Za-z0-9_] becomes "_", a leading digit gets an "m_"
// prefix, and an empty input becomes "unnamed".
func sanitizeID(s string) string {
	if s == "" {
		return "unnamed"
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	id := b.String()
	if id[0] >= '0' && id[0] <= '9' {
		id = "m_" + id
	}
	return id
}
