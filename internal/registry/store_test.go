package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	project := newTestProject(t)
	addModule(t, project, "_Core", "GameLoop", "")
	addModule(t, project, "Features", "Combat", `
name: Combat
version: "1.2.3"
description: Fighting
assembly: Game.Combat
dependencies:
  - _Core/GameLoop
`)
	addModule(t, project, "Levels", "Tutorial", "dependencies: []\n")

	registryFile := filepath.Join(t.TempDir(), "registry.yaml")
	m := NewManager(Options{ProjectPath: project, RegistryPath: registryFile})
	_, err := m.Scan()
	require.NoError(t, err)
	require.NoError(t, m.Save())

	loaded := NewManager(Options{RegistryPath: registryFile})

	want, err := m.Modules("")
	require.NoError(t, err)
	got, err := loaded.Modules("")
	require.NoError(t, err)

	assert.Equal(t, want, got, "modules must round-trip field-for-field")
	assert.Equal(t, m.Version(), loaded.Version())
	require.NotNil(t, loaded.LastScan())
	assert.True(t, m.LastScan().Equal(*loaded.LastScan()))
}

func TestSave_CreatesParentDirectories(t *testing.T) {
	registryFile := filepath.Join(t.TempDir(), "deep", "nested", "dir", "registry.yaml")
	m := NewManager(Options{RegistryPath: registryFile})

	require.NoError(t, m.Save())
	_, err := os.Stat(registryFile)
	assert.NoError(t, err)
}

func TestSave_IOFailureIsObservable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// Parent "directory" is a regular file, so MkdirAll/WriteFile must fail.
	m := NewManager(Options{RegistryPath: filepath.Join(blocker, "registry.yaml")})
	err := m.Save()
	assert.ErrorIs(t, err, ErrSaveRegistry)
}

func TestLoad_MissingDocumentStartsEmpty(t *testing.T) {
	m := NewManager(Options{RegistryPath: filepath.Join(t.TempDir(), "registry.yaml")})

	modules, err := m.Modules("")
	require.NoError(t, err)
	assert.Empty(t, modules)
	assert.Equal(t, "1.0.0", m.Version())
	assert.Nil(t, m.LastScan())
}

func TestLoad_CorruptDocumentResetsToEmpty(t *testing.T) {
	t.Run("unparseable yaml", func(t *testing.T) {
		registryFile := filepath.Join(t.TempDir(), "registry.yaml")
		require.NoError(t, os.WriteFile(registryFile, []byte("{{{ not yaml"), 0o644))

		m := NewManager(Options{RegistryPath: registryFile})
		modules, err := m.Modules("")
		require.NoError(t, err)
		assert.Empty(t, modules)
		assert.Nil(t, m.LastScan())
	})

	t.Run("malformed timestamp", func(t *testing.T) {
		registryFile := filepath.Join(t.TempDir(), "registry.yaml")
		doc := `version: "1.0.0"
last_scan: "not-a-timestamp"
modules:
  - name: Combat
    type: feature
    path: Assets/Features/Combat
    has_yaml: false
`
		require.NoError(t, os.WriteFile(registryFile, []byte(doc), 0o644))

		m := NewManager(Options{RegistryPath: registryFile})
		modules, err := m.Modules("")
		require.NoError(t, err)
		assert.Empty(t, modules, "any load failure resets the whole registry")
	})

	t.Run("wrong document structure", func(t *testing.T) {
		registryFile := filepath.Join(t.TempDir(), "registry.yaml")
		require.NoError(t, os.WriteFile(registryFile, []byte("- just\n- a\n- list\n"), 0o644))

		m := NewManager(Options{RegistryPath: registryFile})
		modules, err := m.Modules("")
		require.NoError(t, err)
		assert.Empty(t, modules)
	})
}

func TestLoad_NormalizesNullDependencies(t *testing.T) {
	registryFile := filepath.Join(t.TempDir(), "registry.yaml")
	doc := `version: "1.0.0"
project_path: null
last_scan: null
modules:
  - name: Combat
    type: feature
    path: Assets/Features/Combat
    has_yaml: false
    version: null
    description: null
    dependencies: null
    assembly: null
`
	require.NoError(t, os.WriteFile(registryFile, []byte(doc), 0o644))

	m := NewManager(Options{RegistryPath: registryFile})
	modules, err := m.Modules("")
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.NotNil(t, modules[0].Dependencies)
	assert.Empty(t, modules[0].Dependencies)
}

func TestLoad_DocumentWithoutVersionGetsDefault(t *testing.T) {
	registryFile := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(registryFile, []byte("modules: []\n"), 0o644))

	m := NewManager(Options{RegistryPath: registryFile})
	assert.Equal(t, "1.0.0", m.Version())
}

func TestMarshalDocument_EmptyRegistry(t *testing.T) {
	m := NewManager(Options{RegistryPath: filepath.Join(t.TempDir(), "registry.yaml")})

	data, err := m.MarshalDocument()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "version: 1.0.0")
	assert.Contains(t, s, "project_path: null")
	assert.Contains(t, s, "last_scan: null")
	assert.Contains(t, s, "modules: []")
}
