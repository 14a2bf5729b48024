package probe

import (
	"time"
)

// Report is the aggregated outcome of one orchestration call.
// It is constructed once per call and never mutated.
type Report struct {
	// ID identifies the orchestration run, for log correlation.
	ID string

	// Status is the aggregate status: the maximum severity across entries.
	Status Status

	// Entries maps registration names to their result entries.
	// Consumers must not rely on execution order; probes run concurrently.
	Entries map[string]Entry

	// Duration is the wall-clock time of the whole fan-out/fan-in, not the
	// sum of individual probe durations.
	Duration time.Duration
}

// AggregateStatus computes the rollup status for a set of entries: the
// maximum severity using the ordering Healthy < Degraded < Unhealthy.
// An empty set aggregates to Healthy.
func AggregateStatus(entries map[string]Entry) Status {
	status := StatusHealthy
	for _, entry := range entries {
		if entry.Status > status {
			status = entry.Status
		}
	}
	return status
}
