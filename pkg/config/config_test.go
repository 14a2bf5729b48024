package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Probes.CacheTag != "cacheable" {
		t.Errorf("Probes.CacheTag = %q, want %q", cfg.Probes.CacheTag, "cacheable")
	}
	if cfg.Probes.KeyPrefix != "probe" {
		t.Errorf("Probes.KeyPrefix = %q, want %q", cfg.Probes.KeyPrefix, "probe")
	}
	if cfg.Probes.DefaultTTL != 10*time.Minute {
		t.Errorf("Probes.DefaultTTL = %v, want 10m", cfg.Probes.DefaultTTL)
	}
	if cfg.Probes.CacheFailures {
		t.Error("Probes.CacheFailures should default to false")
	}
	if cfg.Cache.Backend != "memory" {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, "memory")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Server.HTTPPort != 8080 {
		t.Errorf("Server.HTTPPort = %d, want 8080", cfg.Server.HTTPPort)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
service:
  name: vitals
probes:
  cache_tag: cached
  key_prefix: hc
  default_ttl: 5m
  cache_failures: true
  failure_ttl: 30s
  overrides:
    db:
      cache_ttl: 1m
cache:
  backend: redis
  host: redis.internal
  port: 6380
log:
  level: debug
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Service.Name != "vitals" {
		t.Errorf("Service.Name = %q, want %q", cfg.Service.Name, "vitals")
	}
	if cfg.Probes.CacheTag != "cached" {
		t.Errorf("Probes.CacheTag = %q, want %q", cfg.Probes.CacheTag, "cached")
	}
	if cfg.Probes.DefaultTTL != 5*time.Minute {
		t.Errorf("Probes.DefaultTTL = %v, want 5m", cfg.Probes.DefaultTTL)
	}
	if !cfg.Probes.CacheFailures {
		t.Error("Probes.CacheFailures = false, want true")
	}
	if cfg.Probes.FailureTTL != 30*time.Second {
		t.Errorf("Probes.FailureTTL = %v, want 30s", cfg.Probes.FailureTTL)
	}
	if cfg.Cache.Backend != "redis" {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, "redis")
	}
	if cfg.Cache.Host != "redis.internal" {
		t.Errorf("Cache.Host = %q, want %q", cfg.Cache.Host, "redis.internal")
	}

	override := cfg.Probes.Override("db")
	if override.CacheTTL != time.Minute {
		t.Errorf("Override(db).CacheTTL = %v, want 1m", override.CacheTTL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml", "")
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestProbesConfigOverride(t *testing.T) {
	cfg := ProbesConfig{
		Overrides: map[string]ProbeOverride{
			"Database": {CacheTTL: time.Minute, FailureTTL: 10 * time.Second},
		},
	}

	t.Run("case insensitive match", func(t *testing.T) {
		got := cfg.Override("dataBASE")
		if got.CacheTTL != time.Minute {
			t.Errorf("CacheTTL = %v, want 1m", got.CacheTTL)
		}
		if got.FailureTTL != 10*time.Second {
			t.Errorf("FailureTTL = %v, want 10s", got.FailureTTL)
		}
	})

	t.Run("no override", func(t *testing.T) {
		got := cfg.Override("disk")
		if got != (ProbeOverride{}) {
			t.Errorf("Override(disk) = %+v, want zero value", got)
		}
	})

	t.Run("nil map", func(t *testing.T) {
		got := ProbesConfig{}.Override("anything")
		if got != (ProbeOverride{}) {
			t.Errorf("Override on empty config = %+v, want zero value", got)
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid defaults",
			mutate:  func(cfg *Config) {},
			wantErr: "",
		},
		{
			name:    "empty cache tag",
			mutate:  func(cfg *Config) { cfg.Probes.CacheTag = "  " },
			wantErr: "cache_tag",
		},
		{
			name:    "unknown cache backend",
			mutate:  func(cfg *Config) { cfg.Cache.Backend = "memcached" },
			wantErr: "cache.backend",
		},
		{
			name:    "invalid log level",
			mutate:  func(cfg *Config) { cfg.Log.Level = "verbose" },
			wantErr: "log.level",
		},
		{
			name:    "invalid http port",
			mutate:  func(cfg *Config) { cfg.Server.HTTPPort = -1 },
			wantErr: "http_port",
		},
		{
			name:    "redis backend without host",
			mutate:  func(cfg *Config) { cfg.Cache.Backend = "redis"; cfg.Cache.Host = "" },
			wantErr: "cache.host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNegativeTTLAccepted(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Probes.DefaultTTL = -time.Minute
	cfg.Probes.FailureTTL = -time.Second

	if err := Validate(cfg); err != nil {
		t.Errorf("Validate() error = %v, want nil (non-positive TTLs are legal)", err)
	}
}
