package probe

import (
	"encoding/json"
	"errors"
	"time"
)

// Status represents the health status of a probed dependency.
// Statuses are ordered by severity: Healthy < Degraded < Unhealthy.
type Status int

const (
	// StatusHealthy indicates the dependency is functioning normally.
	StatusHealthy Status = iota
	// StatusDegraded indicates the dependency is functioning but with issues.
	StatusDegraded
	// StatusUnhealthy indicates the dependency is not functioning properly.
	StatusUnhealthy
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusHealthy:
		return "healthy"
	case StatusDegraded:
		return "degraded"
	case StatusUnhealthy:
		return "unhealthy"
	default:
		return "unknown"
	}
}

// Detail keys added to cached entries describing their cache window.
const (
	// DetailCachedUntil holds the RFC3339 expiry timestamp of a cached entry.
	DetailCachedUntil = "cached_until"

	// DetailCacheTTL holds the TTL the entry was cached with.
	DetailCacheTTL = "cache_ttl"
)

// Entry contains the outcome of a single probe execution.
// Entries are never mutated after construction, only replaced.
type Entry struct {
	// Status is the health status.
	Status Status

	// Message provides human-readable context about the status.
	Message string

	// Details contains arbitrary diagnostic data about the probe run.
	// Entries served from the cache additionally carry the DetailCachedUntil
	// and DetailCacheTTL annotations.
	Details map[string]any

	// Duration is how long the probe took, measured by the runner.
	Duration time.Duration

	// Err is the failure cause when the probe failed or timed out.
	Err error
}

// Healthy creates a healthy entry.
func Healthy(message string) Entry {
	return Entry{
		Status:  StatusHealthy,
		Message: message,
	}
}

// Degraded creates a degraded entry.
func Degraded(message string) Entry {
	return Entry{
		Status:  StatusDegraded,
		Message: message,
	}
}

// Unhealthy creates an unhealthy entry with an optional cause.
func Unhealthy(message string, err error) Entry {
	return Entry{
		Status:  StatusUnhealthy,
		Message: message,
		Err:     err,
	}
}

// WithDetails returns a copy of the entry with the given details attached.
func (e Entry) WithDetails(details map[string]any) Entry {
	e.Details = details
	return e
}

// entryRecord is the serialized form of an Entry for cache storage.
// The failure cause survives the round trip as its message only.
type entryRecord struct {
	Status   Status         `json:"status"`
	Message  string         `json:"message,omitempty"`
	Details  map[string]any `json:"details,omitempty"`
	Duration time.Duration  `json:"duration"`
	Error    string         `json:"error,omitempty"`
}

// encodeEntry serializes an entry for cache storage.
func encodeEntry(e Entry) ([]byte, error) {
	rec := entryRecord{
		Status:   e.Status,
		Message:  e.Message,
		Details:  e.Details,
		Duration: e.Duration,
	}
	if e.Err != nil {
		rec.Error = e.Err.Error()
	}
	return json.Marshal(rec)
}

// decodeEntry deserializes a cached entry.
func decodeEntry(data []byte) (Entry, error) {
	var rec entryRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Entry{}, err
	}

	e := Entry{
		Status:   rec.Status,
		Message:  rec.Message,
		Details:  rec.Details,
		Duration: rec.Duration,
	}
	if rec.Error != "" {
		e.Err = errors.New(rec.Error)
	}
	return e, nil
}
