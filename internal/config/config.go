// Package config provides configuration loading and management.
package config

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory
// when no --config flag is given.
const FileName = "icongen.yaml"

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the icongen configuration.
// Loaded from icongen.yaml, validated against the embedded CUE schema.
type Config struct {
	// IconsDir holds the .svg icon sources.
	// Env: ICONGEN_ICONS_DIR, Default: ./icons
	IconsDir string `json:"iconsDir" yaml:"iconsDir" mapstructure:"iconsDir"`

	// RootDir contains one directory per framework package.
	// Env: ICONGEN_ROOT_DIR, Default: .
	RootDir string `json:"rootDir" yaml:"rootDir" mapstructure:"rootDir"`

	// Suffix is appended to every component identifier.
	// Env: ICONGEN_SUFFIX, Default: Icon
	Suffix string `json:"suffix" yaml:"suffix" mapstructure:"suffix"`

	// Concurrency bounds parallel render tasks. Zero picks GOMAXPROCS.
	// Env: ICONGEN_CONCURRENCY, Default: 0
	Concurrency int `json:"concurrency" yaml:"concurrency" mapstructure:"concurrency"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `icongen config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		IconsDir:    "./icons",
		RootDir:     ".",
		Suffix:      "Icon",
		Concurrency: 0,
	}
}

const fileHeader = `# icongen configuration.
# Values may be overridden with ICONGEN_* environment variables or flags.
`

// Marshal renders the configuration as a commented YAML document.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(fileHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
