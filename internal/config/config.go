// Package config loads and validates the project-level jarsmith.yml file.
// The file carries the settings a build would otherwise need repeated on
// every invocation: toolchain binary names, the default author, the
// dependency list, and the default source/output paths. Command-line flags
// override everything here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file jarsmith looks for in the working
// directory when no --config flag is given.
const DefaultFileName = "jarsmith.yml"

// ToolchainConfig names the external binaries that perform compilation and
// archiving. Empty fields mean "use the default from PATH".
type ToolchainConfig struct {
	Compiler string `yaml:"compiler,omitempty"`
	Archiver string `yaml:"archiver,omitempty"`
}

// Config represents the top-level jarsmith.yml configuration.
type Config struct {
	Version      string           `yaml:"version"`
	Toolchain    *ToolchainConfig `yaml:"toolchain,omitempty"`
	Author       string           `yaml:"author,omitempty"`
	Source       string           `yaml:"source,omitempty"`
	MainClass    string           `yaml:"main_class,omitempty"`
	Output       string           `yaml:"output,omitempty"`
	Dependencies []string         `yaml:"dependencies,omitempty"`
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadIfPresent loads path when the file exists and returns an empty valid
// config when it does not. Commands that can run entirely from flags use
// this so a config file stays optional.
func LoadIfPresent(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{Version: "1.0", Toolchain: &ToolchainConfig{}}, nil
	}
	return Load(path)
}

// Validate performs strict validation on the configuration.
func (c *Config) Validate() error {
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	// Duplicate base names are rejected: a flat classpath and the manifest
	// Class-Path line cannot distinguish two archives with the same name.
	seen := make(map[string]string) // base name → first path
	for _, dep := range c.Dependencies {
		base := filepath.Base(dep)
		if first, exists := seen[base]; exists && first != dep {
			return fmt.Errorf("duplicate dependency base name '%s' (paths '%s' and '%s')", base, first, dep)
		}
		seen[base] = dep
	}

	if c.Toolchain == nil {
		c.Toolchain = &ToolchainConfig{}
	}

	return nil
}

// Compiler returns the configured compiler binary, or empty when unset.
func (c *Config) Compiler() string {
	if c.Toolchain == nil {
		return ""
	}
	return c.Toolchain.Compiler
}

// Archiver returns the configured archiver binary, or empty when unset.
func (c *Config) Archiver() string {
	if c.Toolchain == nil {
		return ""
	}
	return c.Toolchain.Archiver
}
