package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validCacheBackends = map[string]bool{
	"memory": true,
	"redis":  true,
}

// Validate checks the configuration for invalid or conflicting values.
// It returns an error describing the first problem found.
//
// Note that zero or negative cache TTLs are deliberately not rejected: a
// non-positive TTL produces entries that are stale on the next read, which
// is valid (if unusual) configuration.
func Validate(cfg *Config) error {
	if cfg.Service.Name == "" {
		return fmt.Errorf("service.name must not be empty")
	}

	if cfg.Server.HTTPPort < 1 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be between 1 and 65535, got %d", cfg.Server.HTTPPort)
	}

	if strings.TrimSpace(cfg.Probes.CacheTag) == "" {
		return fmt.Errorf("probes.cache_tag must not be empty")
	}

	if !validCacheBackends[strings.ToLower(cfg.Cache.Backend)] {
		return fmt.Errorf("cache.backend must be one of [memory redis], got %q", cfg.Cache.Backend)
	}

	if cfg.Cache.Backend == "redis" {
		if cfg.Cache.Host == "" {
			return fmt.Errorf("cache.host must not be empty for redis backend")
		}
		if cfg.Cache.Port < 1 || cfg.Cache.Port > 65535 {
			return fmt.Errorf("cache.port must be between 1 and 65535, got %d", cfg.Cache.Port)
		}
	}

	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("log.level must be one of [debug info warn error], got %q", cfg.Log.Level)
	}

	return nil
}
