// Package config provides unified configuration for the geleit gateway.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (GELEIT_ prefix)
//  4. Validation
package config

import "time"

// Config holds all configuration for the geleit gateway.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Span     SpanConfig     `yaml:"span"`
	Identity IdentityConfig `yaml:"identity"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`             // default: ":8080"
	ReadTimeout     time.Duration `yaml:"read_timeout"`     // default: 30s
	WriteTimeout    time.Duration `yaml:"write_timeout"`    // default: 120s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // default: 30s
}

// SpanConfig holds correlation id settings.
type SpanConfig struct {
	Header string `yaml:"header"` // default: "X-Span-Id"
}

// IdentityConfig holds the allow-all identity layer settings.
type IdentityConfig struct {
	Subject string `yaml:"subject"` // default: "anonymous"
}

// UpstreamConfig holds settings for the forwarding target. When URL is
// empty the gateway serves its built-in status responder instead of
// proxying.
type UpstreamConfig struct {
	URL          string        `yaml:"url"`            // optional
	Timeout      time.Duration `yaml:"timeout"`        // default: 30s
	RetryMax     int           `yaml:"retry_max"`      // default: 3
	RetryWaitMin time.Duration `yaml:"retry_wait_min"` // default: 1s
	RetryWaitMax time.Duration `yaml:"retry_wait_max"` // default: 10s
}

// MetricsConfig holds Prometheus metrics endpoint settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"` // default: true
	Path    string `yaml:"path"`    // default: "/metrics"
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "trace", "debug", "info", "warn", "error"; default: "info"
	Format string `yaml:"format"` // "text" or "json"; default: "text"
	Debug  string `yaml:"debug"`  // comma-separated debug categories; default: none
}

// Defaults returns a Config with all default values filled in.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    120 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Span: SpanConfig{
			Header: "X-Span-Id",
		},
		Identity: IdentityConfig{
			Subject: "anonymous",
		},
		Upstream: UpstreamConfig{
			Timeout:      30 * time.Second,
			RetryMax:     3,
			RetryWaitMin: 1 * time.Second,
			RetryWaitMax: 10 * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
