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
	path := filepath.Join(t.TempDir(), "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAPIConfig_Defaults(t *testing.T) {
	cfg, err := LoadAPIConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, ":9090", cfg.Server.MetricsAddr)
	assert.Equal(t, 30*time.Second, cfg.GetRequestTimeout())
	assert.Equal(t, 20, cfg.Listing.DefaultLimit)
	assert.Equal(t, 100, cfg.Listing.MaxLimit)
}

func TestLoadAPIConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadAPIConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
}

func TestLoadAPIConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  listen_addr: ":9999"
  request_timeout: "10s"
resolver:
  base_url: "http://sets.internal:8080"
  timeout: "2s"
listing:
  default_limit: 25
  max_limit: 50
`)

	cfg, err := LoadAPIConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.ListenAddr)
	assert.Equal(t, 10*time.Second, cfg.GetRequestTimeout())
	assert.Equal(t, "http://sets.internal:8080", cfg.Resolver.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.GetResolverTimeout())
	assert.Equal(t, 25, cfg.Listing.DefaultLimit)
	assert.Equal(t, 50, cfg.Listing.MaxLimit)
	// Unset file fields keep their defaults.
	assert.Equal(t, ":9090", cfg.Server.MetricsAddr)
}

func TestLoadAPIConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  listen_addr: ":9999"
`)
	t.Setenv("API_LISTEN_ADDR", ":7777")
	t.Setenv("LISTING_MAX_LIMIT", "200")

	cfg, err := LoadAPIConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":7777", cfg.Server.ListenAddr)
	assert.Equal(t, 200, cfg.Listing.MaxLimit)
}

func TestLoadAPIConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "bad request timeout",
			content: `
server:
  request_timeout: "soon"
`,
		},
		{
			name: "negative rate limit",
			content: `
server:
  rate_limit_rps: -5
`,
		},
		{
			name: "max below default limit",
			content: `
listing:
  default_limit: 50
  max_limit: 10
`,
		},
		{
			name: "bad resolver timeout",
			content: `
resolver:
  timeout: "-1s"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := LoadAPIConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadAPIConfig_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a map")
	_, err := LoadAPIConfig(path)
	assert.Error(t, err)
}
