// Package config provides configuration management for probekit services.
// It supports loading configuration from YAML files, JSON files, and
// environment variables with automatic validation and default value
// application.
//
// Example usage:
//
//	cfg, err := config.Load("config.yaml", "PROBEKIT")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Or panic on error:
//	cfg := config.MustLoad("config.yaml", "PROBEKIT")
package config

import (
	"strings"
	"time"
)

// Config represents the complete configuration for a probekit-based service.
type Config struct {
	Service ServiceConfig `mapstructure:"service"`
	Server  ServerConfig  `mapstructure:"server"`
	Probes  ProbesConfig  `mapstructure:"probes"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ServiceConfig contains general service information.
type ServiceConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"` // development, staging, production
}

// ServerConfig contains HTTP server configuration for the report endpoint.
type ServerConfig struct {
	HTTPPort        int           `mapstructure:"http_port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ProbesConfig contains the process-wide probe execution and caching options.
// These are read-only after startup.
type ProbesConfig struct {
	// CacheTag is the tag that opts a registration into result caching.
	CacheTag string `mapstructure:"cache_tag"`

	// KeyPrefix is the prefix for all probe cache keys.
	KeyPrefix string `mapstructure:"key_prefix"`

	// DefaultTTL is the cache duration for probe results with no
	// per-registration override. A zero or negative value still produces a
	// cache entry; it is simply stale on the next read.
	DefaultTTL time.Duration `mapstructure:"default_ttl"`

	// CacheFailures controls whether probe failures (timeouts and errors)
	// are cached at all.
	CacheFailures bool `mapstructure:"cache_failures"`

	// FailureTTL is the cache duration for probe failures when
	// CacheFailures is enabled. Zero falls back to DefaultTTL.
	FailureTTL time.Duration `mapstructure:"failure_ttl"`

	// Overrides holds per-registration option overrides keyed by probe
	// name. Keys are matched case-insensitively.
	Overrides map[string]ProbeOverride `mapstructure:"overrides"`
}

// ProbeOverride contains per-registration overrides of the process-wide
// caching options. Zero values mean "use the process-wide setting".
type ProbeOverride struct {
	// CacheTTL overrides ProbesConfig.DefaultTTL for this probe.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	// FailureTTL overrides ProbesConfig.FailureTTL for this probe.
	FailureTTL time.Duration `mapstructure:"failure_ttl"`
}

// Override returns the per-registration override for the given probe name,
// matched case-insensitively. A zero ProbeOverride is returned when no
// override is configured.
func (c ProbesConfig) Override(name string) ProbeOverride {
	if len(c.Overrides) == 0 {
		return ProbeOverride{}
	}

	name = strings.ToLower(name)
	for key, override := range c.Overrides {
		if strings.ToLower(key) == name {
			return override
		}
	}
	return ProbeOverride{}
}

// CacheConfig contains cache backend configuration.
type CacheConfig struct {
	// Backend selects the cache implementation: "memory" or "redis".
	Backend string `mapstructure:"backend"`

	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	MaxRetries   int           `mapstructure:"max_retries"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
	Output string `mapstructure:"output"` // stdout, stderr
}

// MetricsConfig contains metrics configuration.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
	Path      string `mapstructure:"path"`
}
