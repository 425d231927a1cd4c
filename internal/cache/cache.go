// Package cache is a thin read-through layer over redis for the achieved-date
// sets feeding the streak and calendar views. A nil *Cache (or an unreachable
// redis) degrades to a miss on every read, so callers always fall back to the
// database.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/syahrillhaiqal/drinkify/pkg/cleanup"
)

const (
	defaultTTL = time.Hour
	opTimeout  = 2 * time.Second
)

type Options struct {
	Addr     string
	Password string
	DB       int
}

type Cache struct {
	client *redis.Client
}

func New(opts Options) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
	})
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return &Cache{client: client}
}

// GetJSON unmarshals the cached value for key into dst, reporting a hit.
func (c *Cache) GetJSON(ctx context.Context, key string, dst any) bool {
	if c == nil || c.client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err = sonic.Unmarshal(b, dst); err != nil {
		slog.Warn("cache holds unparsable value", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

// SetJSON stores v under key with the default TTL. Failures are logged, not
// returned: caching is best effort.
func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if c == nil || c.client == nil {
		return
	}
	b, err := sonic.Marshal(v)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err = c.client.Set(ctx, key, b, defaultTTL).Err(); err != nil {
		slog.Warn("cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Invalidate drops keys; used whenever a goal mutation may change the
// achieved-date set.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("cache invalidation failed", slog.String("error", err.Error()))
	}
}
