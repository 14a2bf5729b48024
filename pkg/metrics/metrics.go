// Package metrics provides Prometheus metrics for the probe engine with
// standardized naming conventions. It exposes probe run counts, durations,
// and cache effectiveness, plus an observer that feeds them from the
// orchestrator's lifecycle events.
//
// Example usage:
//
//	m, err := metrics.New(cfg.Metrics)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	orch := probe.New(catalog, c, cfg.Probes, probe.WithObserver(m.Observer()))
//	http.Handle("/metrics", m.Handler())
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/probekit/probekit/pkg/config"
	"github.com/probekit/probekit/pkg/errors"
)

// Metrics holds the probe engine's Prometheus collectors backed by a
// private registry.
type Metrics struct {
	registry *prometheus.Registry

	probeRuns     *prometheus.CounterVec
	probeDuration *prometheus.HistogramVec
	cacheHits     *prometheus.CounterVec
	cacheWrites   *prometheus.CounterVec
}

// New creates a Metrics instance with all collectors registered.
// Returns a ConfigurationError if a collector cannot be registered.
func New(cfg config.MetricsConfig) (*Metrics, error) {
	namespace := cfg.Namespace
	if namespace == "" {
		namespace = "probekit"
	}

	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		probeRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "probe",
			Name:      "runs_total",
			Help:      "Total number of probe executions by probe and status",
		}, []string{"probe", "status"}),
		probeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "probe",
			Name:      "duration_seconds",
			Help:      "Probe execution duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"probe"}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total number of probe results served from the cache",
		}, []string{"probe"}),
		cacheWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "writes_total",
			Help:      "Total number of probe result cache writes by outcome",
		}, []string{"probe", "outcome"}),
	}

	collectors := []prometheus.Collector{
		m.probeRuns,
		m.probeDuration,
		m.cacheHits,
		m.cacheWrites,
	}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, errors.NewConfiguration("failed to register metrics collector", err)
		}
	}

	return m, nil
}

// Handler returns an HTTP handler exposing the registry in Prometheus
// text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry returns the underlying registry for registering additional
// application collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
