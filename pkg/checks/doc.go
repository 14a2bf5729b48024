// Package checks provides ready-made probes for common infrastructure
// dependencies: PostgreSQL pools, Redis clients, NATS connections, and
// HTTP endpoints. Each constructor returns a probe.ProbeFunc ready for
// registration in a catalog.
//
// Example usage:
//
//	catalog, err := probe.NewCatalog(
//	    probe.Registration{
//	        Name:    "database",
//	        Tags:    []string{"cacheable"},
//	        Probe:   checks.Postgres(pool),
//	        Timeout: 5 * time.Second,
//	    },
//	    probe.Registration{
//	        Name:  "cache",
//	        Probe: checks.Redis(client),
//	    },
//	)
package checks
