package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biobank-directory/dirview/internal/application/dto"
)

func TestContainer_LoadsDatasetFromConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "networks.yaml"), []byte(`
schema_version: 1.0.0
networks:
  - id: n-001
    name: beautiful network
    common_mta: true
`), 0o600))
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("dataset:\n  paths: [networks.yaml]\nui:\n  max_visible_options: 2\n"), 0o600))

	c, err := New(Options{SystemConfigPath: configPath})
	require.NoError(t, err)
	assert.Equal(t, 2, c.SystemConfig().UI.GetMaxVisibleOptions())

	n, err := c.LoadDirectory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	summaries, err := c.NetworkService().ListNetworks(context.Background(), dto.ListNetworksRequest{})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "beautiful network", summaries[0].Name)

	require.NoError(t, c.Store().GetNetworkReport(context.Background(), "n-001"))
	assert.True(t, c.Store().NetworkReport().CommonMTA)
}

func TestContainer_DatasetPathsOverrideConfig(t *testing.T) {
	c, err := New(Options{
		SystemConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
		DatasetPaths:     []string{"a.yaml"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.yaml"}, c.DatasetPaths())
	assert.NotNil(t, c.Logger())
	assert.NotNil(t, c.FormatterFactory())
	assert.NotNil(t, c.SystemConfigProvider())
}

func TestContainer_NoDatasetConfigured(t *testing.T) {
	c, err := New(Options{SystemConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	require.NoError(t, err)

	_, err = c.LoadDirectory(context.Background())
	assert.Error(t, err)
}
