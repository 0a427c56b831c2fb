package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
  mode: "release"
ai:
  provider: "openai"
  model: "gpt-4o-mini"
  timeout_seconds: 10
cors:
  allowed_origins:
    - "http://localhost:5173"
rate_limit:
  max_requests: 500
  window_minutes: 1
tracing:
  enabled: false
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, 10*time.Second, cfg.AI.Timeout())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 500, cfg.RateLimit.MaxRequests)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadConfigDefaultsPort(t *testing.T) {
	dir := writeConfig(t, `
ai:
  provider: "gemini"
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestAIConfigTimeoutDefault(t *testing.T) {
	assert.Equal(t, 30*time.Second, AIConfig{}.Timeout())
	assert.Equal(t, 30*time.Second, AIConfig{TimeoutSeconds: -1}.Timeout())
	assert.Equal(t, 5*time.Second, AIConfig{TimeoutSeconds: 5}.Timeout())
}
