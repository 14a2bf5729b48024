package checks

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/probekit/probekit/pkg/probe"
)

func TestRedis(t *testing.T) {
	t.Run("reachable server is healthy", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer client.Close()

		entry, err := Redis(client)(context.Background())
		if err != nil {
			t.Fatalf("probe error = %v", err)
		}
		if entry.Status != probe.StatusHealthy {
			t.Errorf("Status = %v, want healthy", entry.Status)
		}
		if _, ok := entry.Details["total_conns"]; !ok {
			t.Error("expected pool stats in details")
		}
	})

	t.Run("unreachable server fails", func(t *testing.T) {
		client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
		defer client.Close()

		if _, err := Redis(client)(context.Background()); err == nil {
			t.Fatal("expected error for unreachable server")
		}
	})

	t.Run("stopped server fails", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer client.Close()

		mr.Close()

		if _, err := Redis(client)(context.Background()); err == nil {
			t.Fatal("expected error after server stopped")
		}
	})
}
