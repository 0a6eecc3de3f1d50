package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// Config represents the lox.yaml configuration of the driver.
type Config struct {
	// Color controls coloured error output: auto, always or never.
	// Defaults to auto.
	Color string `yaml:"color,omitempty"`

	// MaxDepth bounds statement/expression nesting. Zero means DefaultMaxDepth.
	MaxDepth int `yaml:"max_depth,omitempty"`

	// Trace writes driver progress to stderr.
	Trace bool `yaml:"trace,omitempty"`
}

// Default returns the configuration used when no lox.yaml exists.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig reads and validates the config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// Load is LoadConfig that falls back to Default when path does not exist.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// ParseConfig parses lox.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig searches for lox.yaml starting from dir and walking up
// to parent directories. Returns "" and nil error if none is found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *Config) validate(path string) error {
	switch strings.ToLower(c.Color) {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: color must be one of auto, always, never (got %q)", path, c.Color)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%s: max_depth must not be negative (got %d)", path, c.MaxDepth)
	}
	return nil
}

func (c *Config) setDefaults() {
	c.Color = strings.ToLower(c.Color)
	if c.Color == "" {
		c.Color = ColorAuto
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = DefaultMaxDepth
	}
}

// UseColor decides whether output written to f gets ANSI colours.
// In auto mode this follows the NO_COLOR convention (https://no-color.org/)
// and requires f to be a terminal.
func (c *Config) UseColor(f *os.File) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
