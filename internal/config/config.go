// Package config provides configuration loading and management.
package config

// Config represents the unityreg configuration.
// Loaded from ~/.unityreg/config.yaml; environment variables take precedence.
type Config struct {
	// ProjectPath is the Unity project root to scan.
	// Env: UNITYREG_PROJECT_PATH. May be empty: the registry is then
	// unusable for scanning until configured.
	ProjectPath string `mapstructure:"projectPath" yaml:"projectPath,omitempty"`

	// DataDir is where the registry document and report are written.
	// Env: UNITYREG_DATA_DIR, Default: ~/.unityreg/data
	DataDir string `mapstructure:"dataDir" yaml:"dataDir,omitempty"`
}

// WithDefaults fills unset fields with default values.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.DataDir == "" {
		if paths, err := DefaultPaths(); err == nil {
			out.DataDir = paths.DataDir
		}
	}
	return &out
}
