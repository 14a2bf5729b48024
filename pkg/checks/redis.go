package checks

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/probekit/probekit/pkg/probe"
)

// Redis returns a probe verifying connectivity to a Redis server via PING.
// Pool statistics are attached as diagnostic details.
func Redis(client *redis.Client) probe.ProbeFunc {
	return func(ctx context.Context) (probe.Entry, error) {
		if err := client.Ping(ctx).Err(); err != nil {
			return probe.Entry{}, fmt.Errorf("redis ping failed: %w", err)
		}

		stats := client.PoolStats()
		details := map[string]any{
			"total_conns": stats.TotalConns,
			"idle_conns":  stats.IdleConns,
			"hits":        stats.Hits,
			"misses":      stats.Misses,
			"timeouts":    stats.Timeouts,
		}

		return probe.Healthy("redis reachable").WithDetails(details), nil
	}
}
