// Package config loads the generator's YAML manifest. The manifest is
// optional; every field has a working default so `dispatcher-generator
// generate ./...` runs without one.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is where Load looks when no explicit path is given.
const DefaultFilename = "dispatcher.yaml"

// Config is the root of the YAML manifest.
type Config struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Packages are go/packages patterns to scan for declarations.
	Packages []string `yaml:"packages,omitempty"`

	// Prefix overrides the generated type name prefix.
	Prefix string `yaml:"prefix,omitempty"`

	// Output is the fallback directory for artifacts whose declaration
	// directory is unknown.
	Output string `yaml:"output,omitempty"`

	// NullSafe forces null-safe wrapping for every dispatcher, regardless
	// of what the individual declarations request.
	NullSafe bool `yaml:"nullsafe,omitempty"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Packages: []string{"./..."},
		Prefix:   "AdapterFactory",
		Output:   "./generated",
	}
}

// Parse decodes a manifest and fills in defaults for omitted fields.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing manifest: %w", err)
	}

	if len(cfg.Packages) == 0 {
		cfg.Packages = Default().Packages
	}

	if cfg.Prefix == "" {
		cfg.Prefix = Default().Prefix
	}

	if cfg.Output == "" {
		cfg.Output = Default().Output
	}

	return cfg, nil
}

// LoadFromFile reads and parses a manifest file. A missing file at the default
// path is not an error; the defaults apply.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultFilename {
			return Default(), nil
		}

		return Config{}, fmt.Errorf("reading manifest: %w", err)
	}

	return Parse(data)
}
