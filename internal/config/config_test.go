package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"dataset_dir": "`+dir+`",
		"region": "southwest",
		"today": "2025-03-01",
		"verbose": true
	}`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DatasetDir)
	assert.Equal(t, "southwest", cfg.Region)
	assert.Equal(t, "2025-03-01", cfg.Today)
	assert.True(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestValidate_BadToday(t *testing.T) {
	cfg := Config{Today: "03/01/2025"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_DatasetDirMustBeDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(file, []byte("[]"), 0o600))

	cfg := Config{DatasetDir: file}
	assert.Error(t, cfg.Validate())

	cfg = Config{DatasetDir: filepath.Join(dir, "missing")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Region: "west"}
	merged := cfg.MergeWithDefaults(Config{
		DatasetDir: "/data/export",
		Region:     "southwest",
		Today:      "2025-03-01",
	})

	assert.Equal(t, "/data/export", merged.DatasetDir, "empty fields take defaults")
	assert.Equal(t, "west", merged.Region, "set fields win over defaults")
	assert.Equal(t, "2025-03-01", merged.Today)
}
