// Package config loads the optional pfind configuration file. The file
// only tunes output behavior (diagnostic coloring, traversal tracing);
// it never changes which entries match or how the tree is walked.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names an explicit config file, overriding the default
// lookup under the user's config directory.
const EnvConfigPath = "PFIND_CONFIG"

// Color modes accepted by the "color" setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents pfind configuration options.
type Config struct {
	// Color controls diagnostic coloring: auto, always or never.
	Color string `yaml:"color"`

	// Trace logs each directory opened for iteration to stderr.
	Trace bool `yaml:"trace"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Color: ColorAuto,
		Trace: false,
	}
}

// Load resolves the config file path and loads it. An explicit path via
// PFIND_CONFIG must exist and parse; the default path
// ($XDG_CONFIG_HOME/pfind/config.yaml, falling back to
// ~/.config/pfind/config.yaml) is allowed to be absent.
func Load() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return LoadFile(path)
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			// No home directory means no default config to look for.
			return DefaultConfig(), nil
		}
		base = filepath.Join(home, ".config")
	}

	cfg, err := LoadFile(filepath.Join(base, "pfind", "config.yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile loads configuration from the specified file path. Values not
// present in the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
}

// ColorEnabled reports whether diagnostics written to w should be
// colored. In auto mode that means w is a terminal.
func (c *Config) ColorEnabled(w io.Writer) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
