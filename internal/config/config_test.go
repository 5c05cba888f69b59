package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "gemini", cfg.Upstream.Provider)
	assert.True(t, cfg.Policy.ZeroSetIsReset)
	assert.Equal(t, 60*time.Second, cfg.UpstreamTimeout())
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Upstream.Provider, cfg.Upstream.Provider)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
upstream:
  provider: openai
  model: gpt-4o-mini
  timeout: 10s
policy:
  zero_set_is_reset: false
logging:
  debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Upstream.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Upstream.Model)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout())
	assert.False(t, cfg.Policy.ZeroSetIsReset)
	assert.True(t, cfg.Logging.Debug)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("upstream: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("COUNTERSENSE_PROVIDER", "openai")
	t.Setenv("COUNTERSENSE_API_KEY", "from-env")
	t.Setenv("COUNTERSENSE_MODEL", "m1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Upstream.Provider)
	assert.Equal(t, "from-env", cfg.Upstream.APIKey)
	assert.Equal(t, "m1", cfg.Upstream.Model)
}

func TestGeminiKeyFallback(t *testing.T) {
	t.Setenv("COUNTERSENSE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gemini-key", cfg.Upstream.APIKey)
}

func TestMalformedTimeoutFallsBack(t *testing.T) {
	cfg := Default()
	cfg.Upstream.Timeout = "soon"
	assert.Equal(t, 60*time.Second, cfg.UpstreamTimeout())
}
