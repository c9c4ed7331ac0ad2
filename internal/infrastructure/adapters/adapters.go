// Package adapters provides infrastructure adapters that implement application ports.
// These adapters wrap existing infrastructure components to satisfy port interfaces.
package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/biobank-directory/dirview/internal/application/ports"
	"github.com/biobank-directory/dirview/internal/infrastructure/dataset"
	"github.com/biobank-directory/dirview/internal/infrastructure/output"
	"github.com/biobank-directory/dirview/internal/infrastructure/system"
)

// Ensure adapters implement ports at compile time
var (
	_ ports.SystemConfigProvider = (*SystemConfigAdapter)(nil)
	_ ports.DatasetLoader        = (*dataset.Loader)(nil)
	_ ports.FormatterFactory     = (*output.FormatterFactory)(nil)
)

// DefaultConfigPath returns ~/.dirview/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".dirview", "config.yaml"), nil
}

// SystemConfigAdapter adapts system config loader to port interface.
type SystemConfigAdapter struct {
	loader *system.ConfigLoader
}

// NewSystemConfigAdapter creates a new system config adapter.
func NewSystemConfigAdapter() *SystemConfigAdapter {
	return &SystemConfigAdapter{
		loader: system.NewConfigLoader(),
	}
}

// LoadConfig loads system configuration from path, or from the default
// location when path is empty. Relative dataset paths are resolved against
// the directory of the config file.
func (a *SystemConfigAdapter) LoadConfig(_ context.Context, path string) (*system.Config, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	cfg, err := a.loader.Load(path)
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	for i, p := range cfg.Dataset.Paths {
		if !filepath.IsAbs(p) {
			cfg.Dataset.Paths[i] = filepath.Join(base, p)
		}
	}
	return cfg, nil
}
