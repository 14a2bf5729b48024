package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/probekit/probekit/pkg/config"
	"github.com/probekit/probekit/pkg/errors"
)

// envelope wraps a cached value with its logical expiry so that staleness
// does not depend on the Redis server's eviction timing.
type envelope struct {
	ExpiresAt time.Time `json:"expires_at"`
	Value     []byte    `json:"value"`
}

// RedisCache implements the Cache interface using Redis as the backend.
type RedisCache struct {
	client *redis.Client
	cfg    config.CacheConfig
}

// NewRedis creates a new Redis cache client with the given configuration.
// It accepts context for cancellation during connection establishment.
func NewRedis(ctx context.Context, cfg config.CacheConfig) (*RedisCache, error) {
	opts := &redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	}

	client := redis.NewClient(opts)

	// Test the connection
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.NewTemporary("failed to connect to Redis", err)
	}

	return &RedisCache{
		client: client,
		cfg:    cfg,
	}, nil
}

// Get retrieves a cached value by key. Returns (nil, false) on absence,
// logical expiry, backend errors, or a corrupt envelope.
func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, false
	}

	if time.Now().After(env.ExpiresAt) {
		return nil, false
	}

	return env.Value, true
}

// Set stores a value with the given absolute expiry, overwriting any
// existing entry. The physical Redis TTL tracks the logical expiry; entries
// whose expiry has already passed are kept just long enough for the logical
// check to observe them as stale.
func (r *RedisCache) Set(ctx context.Context, key string, value []byte, expiresAt time.Time) error {
	data, err := json.Marshal(envelope{ExpiresAt: expiresAt, Value: value})
	if err != nil {
		return errors.NewTemporary("failed to marshal cache envelope", err)
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return errors.NewTemporary("failed to set cache key", err)
	}

	return nil
}

// Contains reports whether a live entry exists for key.
func (r *RedisCache) Contains(ctx context.Context, key string) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, errors.NewTemporary("failed to check cache key existence", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return false, nil
	}

	return time.Now().Before(env.ExpiresAt), nil
}

// CheckHealth verifies cache connectivity using the Redis PING command.
func (r *RedisCache) CheckHealth(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewTemporary("Redis health check failed", err)
	}
	return nil
}

// Close releases all resources associated with the cache.
func (r *RedisCache) Close() error {
	return r.client.Close()
}

// Ensure RedisCache implements Cache
var _ Cache = (*RedisCache)(nil)
