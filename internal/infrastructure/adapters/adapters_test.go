package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemConfigAdapter_ResolvesRelativeDatasetPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataset:\n  paths: [networks.yaml, /abs/other.yaml]\n"), 0o600))

	cfg, err := NewSystemConfigAdapter().LoadConfig(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "networks.yaml"), "/abs/other.yaml"}, cfg.Dataset.Paths)
}

func TestSystemConfigAdapter_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewSystemConfigAdapter().LoadConfig(context.Background(), filepath.Join(t.TempDir(), "none.yaml"))

	require.NoError(t, err)
	assert.Empty(t, cfg.Dataset.Paths)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	path, err := DefaultConfigPath()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".dirview", "config.yaml"), path)
}
