package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// configEnvVar names the config file used when --config is not given.
const configEnvVar = "TABTEX_CONFIG"

// Config holds defaults that command-line flags override.
type Config struct {
	Format      string   `yaml:"format"`      // Output format (default: latex-table)
	InputFormat string   `yaml:"inputFormat"` // Used when the file extension says nothing
	Title       []string `yaml:"title"`
	Scale       float64  `yaml:"scale"`
	Copy        bool     `yaml:"copy"`
	GFM         bool     `yaml:"gfm"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Format:      "latex-table",
		InputFormat: "csv",
		Scale:       1,
		Copy:        true,
	}
}

// LoadConfig reads the YAML file at path over the defaults. Unknown keys are
// rejected. An empty file yields the defaults.
func LoadConfig(env *Environment, path string) (*Config, error) {
	data, err := env.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	return cfg, nil
}

// resolveConfig loads the config named by --config, then $TABTEX_CONFIG,
// falling back to the defaults when neither is set.
func resolveConfig(env *Environment, flagPath string) (*Config, error) {
	path := flagPath
	if path == "" {
		path = env.Getenv(configEnvVar)
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(env, path)
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *Config) {
	if flags.format != "" {
		cfg.Format = flags.format
	}
	if len(flags.title) > 0 {
		cfg.Title = flags.title
	}
	if flags.changed("scale") {
		cfg.Scale = flags.scale
	}
	if flags.noCopy {
		cfg.Copy = false
	}
	if flags.gfm {
		cfg.GFM = true
	}
}
