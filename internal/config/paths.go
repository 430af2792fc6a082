package config

import (
	"os"
	"path/filepath"
	"strings"
)

// RegistryFileName is the persisted registry document name inside DataDir.
const RegistryFileName = "unity_module_registry.yaml"

// Paths contains standard filesystem paths for unityreg.
type Paths struct {
	// ConfigFile is the path to the config file (~/.unityreg/config.yaml).
	ConfigFile string

	// DataDir is the data directory (~/.unityreg/data).
	DataDir string

	// HomeDir is the unityreg home directory (~/.unityreg).
	HomeDir string
}

// DefaultPaths returns the default paths for unityreg.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	regHome := filepath.Join(homeDir, ".unityreg")

	return &Paths{
		ConfigFile: filepath.Join(regHome, "config.yaml"),
		DataDir:    filepath.Join(regHome, "data"),
		HomeDir:    regHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If UNITYREG_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("UNITYREG_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
