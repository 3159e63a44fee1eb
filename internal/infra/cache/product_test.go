//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/infra/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements the commands the cache uses over a map.
type fakeRedis struct {
	redis.Cmdable
	data    map[string]string
	ttls    map[string]time.Duration
	failErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failErr != nil {
		return redis.NewStringResult("", f.failErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	if f.failErr != nil {
		return redis.NewStatusResult("", f.failErr)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.failErr != nil {
		return redis.NewIntResult(0, f.failErr)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisProductCache(t *testing.T) {
	ctx := context.Background()
	ttl := 30 * time.Second

	t.Run("未登録はミス", func(t *testing.T) {
		c := cache.NewRedisProductCache(newFakeRedis(), ttl)

		p, ok, err := c.Get(ctx, "product-1")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, p)
	})

	t.Run("保存した値をTTL付きで取得できる", func(t *testing.T) {
		rdb := newFakeRedis()
		c := cache.NewRedisProductCache(rdb, ttl)
		want := cache.CachedProduct{ID: "product-1", Name: "Vendyz Flash Item", Stock: 1}

		require.NoError(t, c.Set(ctx, want))
		got, ok, err := c.Get(ctx, "product-1")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, want, *got)
		assert.Equal(t, ttl, rdb.ttls[cache.Key("product-1")])
	})

	t.Run("削除後はミス", func(t *testing.T) {
		c := cache.NewRedisProductCache(newFakeRedis(), ttl)
		require.NoError(t, c.Set(ctx, cache.CachedProduct{ID: "product-1", Name: "x", Stock: 1}))

		require.NoError(t, c.Delete(ctx, "product-1"))
		_, ok, err := c.Get(ctx, "product-1")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("壊れたエントリはエラー", func(t *testing.T) {
		rdb := newFakeRedis()
		rdb.data[cache.Key("product-1")] = "{not json"
		c := cache.NewRedisProductCache(rdb, ttl)

		_, ok, err := c.Get(ctx, "product-1")

		require.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("接続障害はエラー", func(t *testing.T) {
		rdb := newFakeRedis()
		rdb.failErr = errors.New("connection refused")
		c := cache.NewRedisProductCache(rdb, ttl)

		_, _, err := c.Get(ctx, "product-1")
		require.Error(t, err)
		require.Error(t, c.Set(ctx, cache.CachedProduct{ID: "product-1"}))
		require.Error(t, c.Delete(ctx, "product-1"))
	})
}

func TestNopProductCache(t *testing.T) {
	ctx := context.Background()
	var c cache.NopProductCache

	require.NoError(t, c.Set(ctx, cache.CachedProduct{ID: "product-1"}))
	_, ok, err := c.Get(ctx, "product-1")
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, c.Delete(ctx, "product-1"))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "product:product-1", cache.Key("product-1"))
}
