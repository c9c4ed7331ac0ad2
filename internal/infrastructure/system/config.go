// Package system provides infrastructure for system-level configuration.
// This covers the dirview config file (~/.dirview/config.yaml): where the
// directory dataset lives and how the terminal views behave.
package system

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/biobank-directory/dirview/internal/domain/services"
)

// Config represents the global configuration file (~/.dirview/config.yaml).
// It is separate from the dataset files it points to.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	UI      UIConfig      `yaml:"ui"`
}

// DatasetConfig lists the directory dataset files to load, in merge order.
type DatasetConfig struct {
	Paths []string `yaml:"paths"`
	// Concurrency bounds how many files are read at once. 0 uses the loader default.
	Concurrency int `yaml:"concurrency"`
}

// UIConfig configures the filter groups and terminal rendering.
type UIConfig struct {
	// MaxVisibleOptions is nil when unset so an explicit 0 survives.
	MaxVisibleOptions  *int   `yaml:"max_visible_options"`
	Color              string `yaml:"color"`
	InitiallyCollapsed bool   `yaml:"initially_collapsed"`
}

// ColorMode controls whether terminal output is styled.
type ColorMode string

const (
	// ColorAuto styles output when writing to a terminal (default)
	ColorAuto ColorMode = "auto"

	// ColorAlways always styles output
	ColorAlways ColorMode = "always"

	// ColorNever writes plain text
	ColorNever ColorMode = "never"
)

// GetColorMode returns the configured color mode, defaulting to auto.
func (c *UIConfig) GetColorMode() ColorMode {
	switch c.Color {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}

// GetMaxVisibleOptions returns the configured threshold or the default.
func (c *UIConfig) GetMaxVisibleOptions() int {
	if c.MaxVisibleOptions == nil {
		return services.DefaultMaxVisibleOptions
	}
	return *c.MaxVisibleOptions
}

// ConfigLoader loads system configuration from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new system config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// DefaultConfig returns a Config with defaults for all fields.
// This is used when no system config file exists.
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Paths: []string{},
		},
		UI: UIConfig{
			Color: string(ColorAuto),
		},
	}
}

// Load loads the system configuration from the specified path.
// If the file does not exist, returns DefaultConfig().
// This allows dirview to work out-of-the-box without configuration.
func (l *ConfigLoader) Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	//nolint:gosec // G304: path is user-provided config file, validated to exist above
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}

	if config.Dataset.Concurrency < 0 {
		return nil, fmt.Errorf("invalid system config: dataset.concurrency must not be negative")
	}

	return config, nil
}
