// Package probe provides a health-probe orchestration engine with TTL
// caching of results. A set of named registrations is validated once at
// construction; each orchestration call runs the selected probes
// concurrently, serves recent results for cache-eligible probes from a TTL
// cache, and aggregates the outcomes into a single report.
//
// Example usage:
//
//	catalog, err := probe.NewCatalog(
//	    probe.Registration{
//	        Name:    "db",
//	        Tags:    []string{"cacheable"},
//	        Probe:   checks.Postgres(pool),
//	        Timeout: 2 * time.Second,
//	    },
//	    probe.Registration{
//	        Name:  "disk",
//	        Probe: diskProbe,
//	    },
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	orch := probe.New(catalog, cache.NewMemory(), cfg.Probes)
//	report, err := orch.Run(ctx, nil)
//	if err != nil {
//	    return err // caller cancellation only
//	}
//	fmt.Println(report.Status)
//
// Probes report one of three statuses (Healthy, Degraded, Unhealthy). A
// probe that returns an error is treated as failed and recovered into an
// Unhealthy entry; only caller cancellation aborts an orchestration call.
package probe

import (
	"context"
)

// Probe is a unit of work that reports the health of one monitored
// dependency.
//
// Returning an Entry (of any status) is an observed result: it is cached
// under the result TTL rules when the registration is cache-eligible.
// Returning a non-nil error marks the probe run itself as failed: the
// runner recovers it into an Unhealthy entry, cached only when failure
// caching is enabled.
type Probe interface {
	// Check performs the probe. Implementations must respect context
	// cancellation and deadlines.
	Check(ctx context.Context) (Entry, error)
}

// ProbeFunc is a function adapter that implements the Probe interface.
type ProbeFunc func(ctx context.Context) (Entry, error)

// Check implements the Probe interface by calling the function.
func (f ProbeFunc) Check(ctx context.Context) (Entry, error) {
	return f(ctx)
}
