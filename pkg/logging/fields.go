// Package logging provides structured logging with zerolog for the probe
// engine. It supports configurable log levels and output formats
// (JSON/console), with standard field names for probe lifecycle events.
//
// Example usage:
//
//	cfg := config.LogConfig{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "stdout",
//	}
//	logger := logging.New(cfg)
//	logger.Info().Str(logging.Probe, "db").Msg("probe completed")
package logging

// Standard field names for structured logging.
// These constants ensure consistent field naming across all components.
const (
	// ServiceName is the field name for the service generating the log.
	ServiceName = "service_name"

	// Component is the field name for the component/package generating the log.
	Component = "component"

	// Probe is the field name for the probe registration name.
	Probe = "probe"

	// Status is the field name for a probe result status.
	Status = "status"

	// Duration is the field name for operation duration in milliseconds.
	Duration = "duration_ms"

	// CacheKey is the field name for the probe result cache key.
	CacheKey = "cache_key"

	// ExpiresAt is the field name for a cache entry's expiry timestamp.
	ExpiresAt = "expires_at"

	// RunID is the field name for the orchestration run identifier.
	RunID = "run_id"

	// Error is the field name for error information.
	Error = "error"
)
