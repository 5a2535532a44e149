package aoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Year)
		assert.Equal(t, "inputs", cfg.InputDir)
		assert.Equal(t, filepath.Join(home, "keys", "aoc.session"), cfg.SessionFile)
		assert.Equal(t, "https://adventofcode.com", cfg.BaseURL)
		assert.Equal(t, "info", cfg.LogLevel)
	}
}

func TestLoadConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
year: 2019
input_dir: ~/aoc/inputs
log_level: debug
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2019, cfg.Year)
	assert.Equal(t, filepath.Join(home, "aoc", "inputs"), cfg.InputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://adventofcode.com", cfg.BaseURL, "unset keys keep defaults")
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("year: [1"), 0644))
	_, err := LoadConfig(path)
	require.Error(t, err)
}
