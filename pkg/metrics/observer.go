package metrics

import (
	"context"
	"time"

	"github.com/probekit/probekit/pkg/probe"
)

// observer feeds probe lifecycle events into the collectors.
type observer struct {
	m *Metrics
}

// Observer returns a probe.Observer recording lifecycle events into this
// Metrics instance. Combine it with other observers via probe.MultiObserver.
func (m *Metrics) Observer() probe.Observer {
	return &observer{m: m}
}

func (o *observer) ProbeStarted(context.Context, string) {}

func (o *observer) ProbeCompleted(_ context.Context, name string, entry probe.Entry) {
	o.m.probeRuns.WithLabelValues(name, entry.Status.String()).Inc()
	o.m.probeDuration.WithLabelValues(name).Observe(entry.Duration.Seconds())
}

func (o *observer) CacheHit(_ context.Context, name string) {
	o.m.cacheHits.WithLabelValues(name).Inc()
}

func (o *observer) CacheWrite(_ context.Context, name string, _ time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	o.m.cacheWrites.WithLabelValues(name, outcome).Inc()
}
