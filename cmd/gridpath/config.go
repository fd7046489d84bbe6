package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is one CLI run. Graph, when set, wins over the generator fields.
type Config struct {
	Graph string `yaml:"graph"`

	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Export        string `yaml:"export"`
	Trace         bool   `yaml:"trace"`
	Verify        bool   `yaml:"verify"`
	MaxIterations int    `yaml:"max_iterations"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// DefaultConfig returns a 5×4 random grid with seed 1 and info-level text logs.
func DefaultConfig() Config {
	return Config{
		Width:     5,
		Height:    4,
		Seed:      1,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadConfig decodes the YAML file at path over DefaultConfig.
// Unknown keys are rejected. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("YAML error in config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields the flag layer cannot.
func (c Config) Validate() error {
	if c.Graph == "" && (c.Width < 1 || c.Height < 1) {
		return fmt.Errorf("invalid grid size %dx%d", c.Width, c.Height)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("invalid max-iterations %d: must be non-negative", c.MaxIterations)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}
	return nil
}
