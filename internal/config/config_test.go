package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every XDG location into a temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("CARDBOOK_CONFIG", "")
	return dir
}

func TestPaths(t *testing.T) {
	dir := isolate(t)

	assert.Equal(t, filepath.Join(dir, "config", "cardbook", "config.toml"), GetConfigFilePath())
	assert.Equal(t, filepath.Join(dir, "data", "cardbook", "datasets"), GetDatasetLibraryPath())
	assert.Equal(t, filepath.Join(dir, "cache", "cardbook"), GetCacheDir())

	t.Setenv("CARDBOOK_CONFIG", filepath.Join(dir, "custom.toml"))
	assert.Equal(t, filepath.Join(dir, "custom.toml"), GetConfigFilePath())
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(GetConfigFilePath())
	assert.NoError(t, err, "default config is written to disk")
}

func TestLoadConfigKeepsDefaultThreshold(t *testing.T) {
	isolate(t)
	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("reduced_motion = true\n"), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.Threshold)
	assert.True(t, cfg.ReducedMotion)
}

func TestLoadConfigRejectsBadThreshold(t *testing.T) {
	isolate(t)
	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("threshold = 1.5\n"), 0644))

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "threshold")
}

func TestSetDefaultDataset(t *testing.T) {
	isolate(t)

	require.NoError(t, SetDefaultDataset("revised"))

	name, err := GetDefaultDataset()
	require.NoError(t, err)
	assert.Equal(t, "revised", name)
}

func TestGetDatasetPath(t *testing.T) {
	dir := isolate(t)

	libDataset := filepath.Join(GetDatasetLibraryPath(), "revised")
	require.NoError(t, os.MkdirAll(libDataset, 0755))

	path, err := GetDatasetPath("revised")
	require.NoError(t, err)
	assert.Equal(t, libDataset, path)

	local := filepath.Join(dir, "local.json")
	require.NoError(t, os.WriteFile(local, []byte("[]"), 0644))
	path, err = GetDatasetPath(local)
	require.NoError(t, err)
	assert.Equal(t, local, path)

	_, err = GetDatasetPath("nope")
	assert.ErrorContains(t, err, "dataset not found")
}
