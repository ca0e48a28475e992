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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "https://www.fut.gg", cfg.BaseURL)
	assert.Equal(t, "evolutions_full.json", cfg.Output)
	assert.Equal(t, 30*time.Second, cfg.Fetcher.TimeoutDuration())
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
logLevel: DEBUG
workCount: 4
fetcher:
  timeout: 5000
  proxy:
    - http://127.0.0.1:8888
storage:
  sqlURL: root:123456@tcp(127.0.0.1:3306)/crawler?charset=utf8mb4
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 4, cfg.WorkCount)
	assert.Equal(t, 5*time.Second, cfg.Fetcher.TimeoutDuration())
	assert.Equal(t, []string{"http://127.0.0.1:8888"}, cfg.Fetcher.Proxy)
	assert.Equal(t, "root:123456@tcp(127.0.0.1:3306)/crawler?charset=utf8mb4", cfg.Storage.SqlURL)
	// 未出现的键保持默认
	assert.Equal(t, "https://www.fut.gg", cfg.BaseURL)
	assert.Equal(t, "evolutions", cfg.Storage.Table)
	assert.Equal(t, 50, cfg.Storage.BatchCount)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(t.TempDir(), "nope.yaml")},
		{name: "bad yaml", path: writeConfig(t, "workCount: [1, 2")},
		{name: "invalid workers", path: writeConfig(t, "workCount: 0")},
		{name: "empty base url", path: writeConfig(t, `baseURL: ""`)},
		{name: "negative timeout", path: writeConfig(t, "fetcher:\n  timeout: -1")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			assert.Error(t, err)
		})
	}
}
