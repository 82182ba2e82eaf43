package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "$ ", cfg.Prompt)
	assert.Equal(t, "6", cfg.PromptColor)
	assert.Empty(t, cfg.History.File)
	assert.Equal(t, 500, cfg.History.Limit)
}

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// The defaults are now on disk and survive a reload.
	path := filepath.Join(home, ".config", "gosh", "config.yaml")
	_, err = os.Stat(path)
	require.NoError(t, err)

	reloaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("prompt: \"gosh> \"\nhistory:\n  file: /tmp/hist\n  limit: 50\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "gosh> ", cfg.Prompt)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, "6", cfg.PromptColor)
	assert.Equal(t, "/tmp/hist", cfg.History.File)
	assert.Equal(t, 50, cfg.History.Limit)
}

func TestLoadFromRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: [unclosed"), 0o600))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{
		Prompt:      "% ",
		PromptColor: "#ff00ff",
		History:     HistoryConfig{File: "~/custom_history", Limit: 100},
	}

	require.NoError(t, Save(cfg, path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestHistoryFileDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultConfig().HistoryFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".gosh_history"), path)
}

func TestHistoryFileTildeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	cfg.History.File = "~/shell/history"

	path, err := cfg.HistoryFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "shell", "history"), path)
}

func TestHistoryFileExplicitPathUntouched(t *testing.T) {
	cfg := DefaultConfig()
	cfg.History.File = "/var/tmp/hist"

	path, err := cfg.HistoryFile()
	require.NoError(t, err)
	assert.Equal(t, "/var/tmp/hist", path)
}
