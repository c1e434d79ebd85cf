package config

// ServerConfig contains the management REST API bind settings.
type ServerConfig struct {
	Host   string `json:"host"`
	Port   int    `json:"port"`
	APIKey string `json:"api_key,omitempty"`
}

// UpstreamConfig points at the DNS server's management endpoint.
type UpstreamConfig struct {
	Endpoint string `json:"endpoint"`
	APIKey   string `json:"api_key,omitempty"`
	Timeout  string `json:"timeout"` // request timeout, e.g. "15s"
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `json:"level"`
	Structured       bool              `json:"structured"`
	StructuredFormat string            `json:"structured_format"`
	IncludePID       bool              `json:"include_pid"`
	ExtraFields      map[string]string `json:"extra_fields,omitempty"`
}

// AuditConfig controls the local operation log. An empty path disables
// it.
type AuditConfig struct {
	Path string `json:"path,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Upstream UpstreamConfig `json:"upstream"`
	Logging  LoggingConfig  `json:"logging"`
	Audit    AuditConfig    `json:"audit"`
}
