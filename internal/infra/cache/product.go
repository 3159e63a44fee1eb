package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/config"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "product:"

// CachedProduct is the cached read model of a product.
type CachedProduct struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

func Key(productID string) string {
	return keyPrefix + productID
}

func NewRedisClient(ctx context.Context, cfg config.CacheConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errs.Wrapf(err, "failed to connect to redis at %s", cfg.Addr)
	}
	return rdb, nil
}

// RedisProductCache stores products as JSON under product:<id> with a TTL.
type RedisProductCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisProductCache(rdb redis.Cmdable, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{rdb: rdb, ttl: ttl}
}

// Get reports a miss as (nil, false, nil).
func (c *RedisProductCache) Get(ctx context.Context, productID string) (*CachedProduct, bool, error) {
	raw, err := c.rdb.Get(ctx, Key(productID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "cache get failed")
	}
	var p CachedProduct
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false, errs.Wrap(err, "cache entry is corrupt")
	}
	return &p, true, nil
}

func (c *RedisProductCache) Set(ctx context.Context, p CachedProduct) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return errs.Wrap(err, "cache encode failed")
	}
	if err := c.rdb.Set(ctx, Key(p.ID), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "cache set failed")
	}
	return nil
}

func (c *RedisProductCache) Delete(ctx context.Context, productID string) error {
	if err := c.rdb.Del(ctx, Key(productID)).Err(); err != nil {
		return errs.Wrap(err, "cache delete failed")
	}
	return nil
}

// NopProductCache always misses. Used when no Redis address is configured.
type NopProductCache struct{}

func (NopProductCache) Get(context.Context, string) (*CachedProduct, bool, error) { return nil, false, nil }
func (NopProductCache) Set(context.Context, CachedProduct) error                 { return nil }
func (NopProductCache) Delete(context.Context, string) error                     { return nil }
