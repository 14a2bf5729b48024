// Package cache provides TTL caching of probe results keyed by probe name.
// Entries are written with an absolute expiry timestamp and treated as
// absent once that timestamp has passed, whether or not the backing store
// has physically evicted them.
//
// Example usage:
//
//	c, err := cache.NewRedis(ctx, cfg.Cache)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	key := cache.Key("probe", "db")
//	if err := c.Set(ctx, key, payload, time.Now().Add(10*time.Minute)); err != nil {
//	    logger.Warn().Err(err).Msg("cache write failed")
//	}
//
//	if data, ok := c.Get(ctx, key); ok {
//	    // serve cached result
//	}
package cache

import (
	"context"
	"time"
)

// Cache is the interface for caching probe result entries.
//
// Contract:
//   - Concurrency: implementations must be safe for concurrent use.
//     Concurrent Set calls for the same key may race; the last writer wins.
//   - Expiry: Get and Contains treat an entry whose expiry has passed as
//     absent, regardless of physical eviction.
//   - Errors: Get never errors; it returns (nil, false) on miss, including
//     when the backend is unreachable.
type Cache interface {
	// Get retrieves a cached value. Returns (nil, false) on miss or expiry.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value with the given absolute expiry time, overwriting
	// any existing entry. An expiry at or before now is still a valid
	// write; the entry is simply stale on the next read.
	Set(ctx context.Context, key string, value []byte, expiresAt time.Time) error

	// Contains reports whether a live (unexpired) entry exists for key.
	Contains(ctx context.Context, key string) (bool, error)

	// Close releases all resources associated with the cache.
	Close() error
}
