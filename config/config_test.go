package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }},
		{"empty addr", func(c *Config) { c.Addr = "" }},
		{"zero chart height", func(c *Config) { c.ChartHeight = 0 }},
		{"negative preview rows", func(c *Config) { c.PreviewRows = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "censusviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\ndataset: /data/adult.csv\nlog-level: debug\n"), 0o644))

	cfg, err := Load(nil, path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/data/adult.csv", cfg.Dataset)
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
	// unset values keep their defaults
	assert.Equal(t, Default().ChartHeight, cfg.ChartHeight)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoadRejectsInvalidFileValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "censusviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log-level: loud\n"), 0o644))

	_, err := Load(nil, path)
	assert.Error(t, err)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CENSUSVIZ_ADDR", ":7070")
	t.Setenv("CENSUSVIZ_PREVIEW_ROWS", "10")

	cfg, err := Load(nil, "")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, 10, cfg.PreviewRows)
}
