// Package config provides configuration types, loading and validation
// for the splithorizon manager.
//
// Configuration comes from a JSON file (flag or SPLITHORIZON_CONFIG
// env var) with flag overrides applied in cmd/splithorizon.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// EnvConfigPath is the environment variable consulted when no -config
// flag is given.
const EnvConfigPath = "SPLITHORIZON_CONFIG"

// ResolveConfigPath picks the config file path: explicit flag value
// first, then the environment variable, then empty (defaults only).
func ResolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfigPath)
}

// Load reads the config file at path. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8053
	}
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return errors.New("server.port must be 1..65535")
	}

	if cfg.Upstream.Endpoint == "" {
		return errors.New("upstream.endpoint is required")
	}
	if cfg.Upstream.Timeout == "" {
		cfg.Upstream.Timeout = "15s"
	}
	if _, err := cfg.Upstream.ParseTimeout(); err != nil {
		return err
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	return nil
}

// ParseTimeout parses the upstream request timeout.
func (u *UpstreamConfig) ParseTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(u.Timeout)
	if err != nil {
		return 0, fmt.Errorf("upstream.timeout %q: %w", u.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("upstream.timeout must not be negative")
	}
	return d, nil
}
