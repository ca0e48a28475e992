package crawl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/dszqbsm/evocrawler/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func parseFlags(t *testing.T, args ...string) (*Flags, *pflag.FlagSet) {
	t.Helper()
	var f Flags
	fs := pflag.NewFlagSet("evocrawler", pflag.ContinueOnError)
	f.Register(fs)
	require.NoError(t, fs.Parse(args))
	return &f, fs
}

func TestFlagsConfigDefaults(t *testing.T) {
	f, fs := parseFlags(t)
	cfg, err := f.Config(fs)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestFlagsConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: from-file.json\nworkCount: 2\nlogLevel: WARN\n"), 0o644))

	f, fs := parseFlags(t, "--config", path, "--workers", "6", "--base-url", "http://127.0.0.1:8080")
	cfg, err := f.Config(fs)
	require.NoError(t, err)

	assert.Equal(t, "from-file.json", cfg.Output)
	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.Equal(t, 6, cfg.WorkCount)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.BaseURL)
}

func TestFlagsConfigInvalid(t *testing.T) {
	f, fs := parseFlags(t, "--workers", "0")
	_, err := f.Config(fs)
	assert.Error(t, err)
}

func TestNewFetcher(t *testing.T) {
	cfg := config.Default().Fetcher
	cfg.Proxy = []string{"http://127.0.0.1:8888"}
	f, err := NewFetcher(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, f)

	cfg.Proxy = []string{"://bad"}
	_, err = NewFetcher(cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/evolutions/":
			w.Write([]byte(`<a href="/evolutions/7-striker/">striker</a>`))
		case "/evolutions/7-striker/":
			w.Write([]byte(`<html><body><h1>Striker</h1></body></html>`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.LogLevel = "ERROR"
	cfg.Output = filepath.Join(t.TempDir(), "evolutions_full.json")

	require.NoError(t, Run(context.Background(), cfg))

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "7-striker", records[0]["id"])
	assert.Equal(t, "Striker", records[0]["name"])
	assert.Equal(t, "", records[0]["cost"])
}

func TestRunListingFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.LogLevel = "FATAL"
	cfg.Output = filepath.Join(t.TempDir(), "evolutions_full.json")

	assert.Error(t, Run(context.Background(), cfg))
	_, err := os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(err))
}

func TestRunBadLogLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "LOUD"
	assert.Error(t, Run(context.Background(), cfg))
}
