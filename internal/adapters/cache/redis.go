// Package cache provides a Redis-backed ports.SourceCache for convention
// sources fetched from the registry.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/document"
	"github.com/jsamuelsen11/api-conventions/internal/domain/convention"
	"github.com/jsamuelsen11/api-conventions/internal/platform/config"
	"github.com/jsamuelsen11/api-conventions/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.SourceCache   = (*RedisSourceCache)(nil)
	_ ports.HealthChecker = (*RedisSourceCache)(nil)
)

// CheckName identifies the cache in readiness reports.
const CheckName = "redis-cache"

// pingTimeout bounds the connection check made by NewRedisSourceCache.
const pingTimeout = 5 * time.Second

// RedisSourceCache stores convention sources as JSON documents under
// prefix+name with a fixed TTL.
type RedisSourceCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisSourceCache connects to Redis using cfg and verifies the connection.
func NewRedisSourceCache(ctx context.Context, cfg *config.CacheConfig) (*RedisSourceCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}

	return NewRedisSourceCacheWithClient(client, cfg.Prefix, cfg.TTL), nil
}

// NewRedisSourceCacheWithClient wraps an existing client.
func NewRedisSourceCacheWithClient(client *redis.Client, prefix string, ttl time.Duration) *RedisSourceCache {
	return &RedisSourceCache{client: client, prefix: prefix, ttl: ttl}
}

// Get implements ports.SourceCache. A missing key is a miss, not an error.
func (c *RedisSourceCache) Get(ctx context.Context, name string) (*convention.Source, bool, error) {
	raw, err := c.client.Get(ctx, c.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading cached source %q: %w", name, err)
	}

	var doc document.SourceDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false, fmt.Errorf("decoding cached source %q: %w", name, err)
	}
	src, err := document.ToDomainSource(doc)
	if err != nil {
		return nil, false, fmt.Errorf("cached source %q: %w", name, err)
	}
	return src, true, nil
}

// Set implements ports.SourceCache.
func (c *RedisSourceCache) Set(ctx context.Context, src *convention.Source) error {
	raw, err := json.Marshal(document.FromDomainSource(src))
	if err != nil {
		return fmt.Errorf("encoding source %q: %w", src.Name, err)
	}
	if err := c.client.Set(ctx, c.key(src.Name), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("caching source %q: %w", src.Name, err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (c *RedisSourceCache) Name() string {
	return CheckName
}

// HealthCheck pings Redis.
func (c *RedisSourceCache) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%s: %w", CheckName, err)
	}
	return nil
}

// Close closes the underlying client.
func (c *RedisSourceCache) Close() error {
	return c.client.Close()
}

func (c *RedisSourceCache) key(name string) string {
	return c.prefix + name
}
