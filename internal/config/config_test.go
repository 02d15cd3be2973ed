package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SKILLDECK_BASE_DIR", t.TempDir())
	t.Setenv("SKILLDECK_API_URL", "")
	t.Setenv("SKILLDECK_PAGE_SIZE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SKILLDECK_BASE_DIR", dir)
	t.Setenv("SKILLDECK_API_URL", "http://skills.example.com:9090/")
	t.Setenv("SKILLDECK_PAGE_SIZE", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.BaseDir)
	assert.Equal(t, "http://skills.example.com:9090/", cfg.API.BaseURL)
	assert.Equal(t, 10, cfg.PageSize)
}

func TestLoadIgnoresInvalidPageSize(t *testing.T) {
	t.Setenv("SKILLDECK_BASE_DIR", t.TempDir())

	for _, raw := range []string{"0", "-2", "three"} {
		t.Setenv("SKILLDECK_PAGE_SIZE", raw)
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultPageSize, cfg.PageSize, "page size %q should be ignored", raw)
	}
}

func TestGetPaths(t *testing.T) {
	cfg := &Config{BaseDir: "/data/skilldeck"}
	paths := GetPaths(cfg)

	assert.Equal(t, filepath.Join("/data/skilldeck", "skilldeck.db"), paths.Database)
	assert.Equal(t, filepath.Join("/data/skilldeck", "skilldeck.log"), paths.LogFile)
}
