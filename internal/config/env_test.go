package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 13, cfg.DefaultVersion)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.OutputDir)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STRUCTGEN_OUTPUT_DIR", "/tmp/out")
	t.Setenv("STRUCTGEN_DEFAULT_VERSION", "12")
	t.Setenv("STRUCTGEN_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, 12, cfg.DefaultVersion)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadRejectsNonPositiveVersion(t *testing.T) {
	t.Setenv("STRUCTGEN_DEFAULT_VERSION", "0")

	_, err := Load()
	assert.ErrorContains(t, err, "must be positive")
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("STRUCTGEN_DEFAULT_VERSION", "not-an-int")

	var cfg Config
	err := ParseEnv(&cfg)
	assert.ErrorContains(t, err, "parse env:")
}
