package yacache_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaCodeDev/GoYaTgBotAPI/yacache"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}

func TestRedisCache(t *testing.T) {
	t.Parallel()

	client, mr := setupTestRedis(t)
	cache := yacache.NewRedis(client)
	ctx := context.Background()

	t.Run("[Set] - then get", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "render:1", "<b>bold</b>", time.Minute))

		value, err := cache.Get(ctx, "render:1")
		require.NoError(t, err)
		assert.Equal(t, "<b>bold</b>", value)
	})

	t.Run("[Set] - ttl expires", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "render:ttl", "x", time.Second))

		mr.FastForward(2 * time.Second)

		_, err := cache.Get(ctx, "render:ttl")
		require.Error(t, err)
		assert.ErrorIs(t, err, yacache.ErrKeyNotFound)
		assert.Equal(t, http.StatusNotFound, err.Code())
	})

	t.Run("[GetDel] - removes key", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "render:once", "y", 0))

		value, err := cache.GetDel(ctx, "render:once")
		require.NoError(t, err)
		assert.Equal(t, "y", value)

		exists, err := cache.Exists(ctx, "render:once")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("[Exists] - all keys required", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "render:a", "a", 0))

		exists, err := cache.Exists(ctx, "render:a")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = cache.Exists(ctx, "render:a", "render:missing")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("[Del] - idempotent", func(t *testing.T) {
		require.NoError(t, cache.Del(ctx, "render:a"))
		require.NoError(t, cache.Del(ctx, "render:a"))
	})

	t.Run("[Ping] - works", func(t *testing.T) {
		assert.NoError(t, cache.Ping(ctx))
	})

	t.Run("[Raw] - same client", func(t *testing.T) {
		assert.Same(t, client, cache.Raw())
	})
}

func TestRedisCache_ClosedClient(t *testing.T) {
	t.Parallel()

	client, _ := setupTestRedis(t)
	cache := yacache.NewRedis(client)

	require.NoError(t, cache.Close())

	err := cache.Ping(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, yacache.ErrFailedPing)
}
