package checks

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/probekit/probekit/pkg/probe"
)

// Postgres returns a probe verifying connectivity to a PostgreSQL pool.
// It executes a trivial query and inspects pool statistics: a reachable
// database whose pool is fully saturated reports Degraded rather than
// Healthy, since new work would block on connection acquisition.
func Postgres(pool *pgxpool.Pool) probe.ProbeFunc {
	return func(ctx context.Context) (probe.Entry, error) {
		var result int
		if err := pool.QueryRow(ctx, "SELECT 1").Scan(&result); err != nil {
			return probe.Entry{}, fmt.Errorf("postgres query failed: %w", err)
		}
		if result != 1 {
			return probe.Entry{}, fmt.Errorf("postgres query returned unexpected result: %d", result)
		}

		stats := pool.Stat()
		details := map[string]any{
			"total_conns": stats.TotalConns(),
			"idle_conns":  stats.IdleConns(),
			"max_conns":   stats.MaxConns(),
		}

		if stats.IdleConns() == 0 && stats.TotalConns() == stats.MaxConns() {
			msg := fmt.Sprintf("connection pool saturated: %d/%d connections in use",
				stats.TotalConns(), stats.MaxConns())
			return probe.Degraded(msg).WithDetails(details), nil
		}

		return probe.Healthy("postgres reachable").WithDetails(details), nil
	}
}
