// Package config loads driver options from a YAML file, with CLI flags
// taking precedence over anything the file sets.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the options the driver and CLI need beyond what a single
// invocation's flags carry. NativesDir is where an external native
// package loader (§1, out of scope for this core) would look for
// additional native implementations; MaxFrames bounds recursive method
// dispatch the way nooga-paserati's vm.MaxFrames bounds its own call
// stack.
type Config struct {
	NativesDir string `yaml:"nativesDir"`
	MaxFrames  int    `yaml:"maxFrames"`
	Debug      bool   `yaml:"debug"`
	NoColor    bool   `yaml:"noColor"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{MaxFrames: 2048}
}

// Load reads a YAML config file, falling back to Default() for any field
// the file doesn't set (yaml.Unmarshal only overwrites fields present in
// the document, so seeding defaults first is enough).
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
