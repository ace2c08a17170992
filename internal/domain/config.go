package domain

import (
	"fmt"
	"net/url"
	"slices"
	"time"
)

// ValidLogLevels enumerates accepted log_level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ClientConfig holds client configuration loaded from .smellview.yaml.
type ClientConfig struct {
	Endpoint          string        `yaml:"endpoint"            json:"endpoint"`
	Token             string        `yaml:"token"               json:"-"`
	Timeout           time.Duration `yaml:"timeout"             json:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second" json:"requests_per_second"`
	Burst             int           `yaml:"burst"               json:"burst"`
	CacheDir          string        `yaml:"cache_dir"           json:"cache_dir"`
	HistoryPath       string        `yaml:"history_path"        json:"history_path"`
	ValidateSchema    bool          `yaml:"validate_schema"     json:"validate_schema"`
	ListenAddr        string        `yaml:"listen_addr"         json:"listen_addr"`
	LogLevel          string        `yaml:"log_level"           json:"log_level"`
	OTLPEndpoint      string        `yaml:"otlp_endpoint"       json:"otlp_endpoint,omitempty"`
}

// DefaultClientConfig returns the configuration used when no file exists.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Endpoint:          "http://localhost:8080/graphql",
		Timeout:           30 * time.Second,
		RequestsPerSecond: 10,
		Burst:             5,
		CacheDir:          ".smellview/cache",
		HistoryPath:       ".smellview/history.db",
		ListenAddr:        ":8090",
		LogLevel:          "info",
	}
}

// Validate reports the first invalid field.
func (c ClientConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint must not be empty")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("endpoint %q: %w", c.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint %q: scheme must be http or https", c.Endpoint)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must not be negative")
	}
	if c.Burst < 0 {
		return fmt.Errorf("burst must not be negative")
	}
	if c.LogLevel != "" && !slices.Contains(ValidLogLevels, c.LogLevel) {
		return fmt.Errorf("unknown log_level %q (valid: %v)", c.LogLevel, ValidLogLevels)
	}
	return nil
}
