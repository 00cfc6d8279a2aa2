package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTipCache(t *testing.T) (*RedisTipCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisTipCache(client), mr
}

func TestRedisTipCache_Miss(t *testing.T) {
	cache, _ := newTestTipCache(t)

	tip, ok, err := cache.Get(context.Background(), "pricing:2026-10-16")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, tip)
}

func TestRedisTipCache_SetAndGet(t *testing.T) {
	cache, mr := newTestTipCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "outreach:tiktok:2026-10-16", "Pin your best collab", 12*time.Hour))

	stored, err := mr.Get("creatoros:tip:outreach:tiktok:2026-10-16")
	require.NoError(t, err)
	assert.Equal(t, "Pin your best collab", stored)
	assert.Equal(t, 12*time.Hour, mr.TTL("creatoros:tip:outreach:tiktok:2026-10-16"))

	tip, ok, err := cache.Get(ctx, "outreach:tiktok:2026-10-16")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Pin your best collab", tip)
}

func TestRedisTipCache_Expires(t *testing.T) {
	cache, mr := newTestTipCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "pricing:2026-10-16", "Charge for usage rights", time.Hour))
	mr.FastForward(time.Hour + time.Second)

	_, ok, err := cache.Get(ctx, "pricing:2026-10-16")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisTipCache_ServerDown(t *testing.T) {
	cache, mr := newTestTipCache(t)
	mr.Close()

	_, ok, err := cache.Get(context.Background(), "pricing:2026-10-16")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, cache.Set(context.Background(), "pricing:2026-10-16", "tip", time.Hour))
}
