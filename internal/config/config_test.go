package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nvdberg/splithorizon/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"upstream":{"endpoint":"http://dns1:5380/api"}}`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8053, cfg.Server.Port)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "15s", cfg.Upstream.Timeout)
}

func TestLoad_MissingEndpoint(t *testing.T) {
	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream.endpoint")
}

func TestLoad_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"server": {"host": "0.0.0.0", "port": 9000, "api_key": "k"},
		"upstream": {"endpoint": "http://dns1:5380/api", "timeout": "5s"},
		"logging": {"level": "debug", "structured": true},
		"audit": {"path": "/var/lib/splithorizon/audit.db"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "/var/lib/splithorizon/audit.db", cfg.Audit.Path)

	d, err := cfg.Upstream.ParseTimeout()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, d)
}

func TestValidate_BadTimeout(t *testing.T) {
	cfg := &config.Config{
		Upstream: config.UpstreamConfig{Endpoint: "http://x", Timeout: "soon"},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadPort(t *testing.T) {
	cfg := &config.Config{
		Server:   config.ServerConfig{Port: 70000},
		Upstream: config.UpstreamConfig{Endpoint: "http://x"},
	}
	assert.Error(t, cfg.Validate())
}

func TestResolveConfigPath(t *testing.T) {
	assert.Equal(t, "/etc/sh.json", config.ResolveConfigPath("/etc/sh.json"))

	t.Setenv(config.EnvConfigPath, "/from/env.json")
	assert.Equal(t, "/from/env.json", config.ResolveConfigPath(""))
}
