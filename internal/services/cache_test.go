package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/franchise-sim/pkg/logger"
)

func newTestCache(t *testing.T, threshold int) (*CacheService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr:        mr.Addr(),
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { client.Close() })
	entry := logger.NewDiscardLogger().WithField("service", "cache-test")
	return NewCacheService(client, threshold, entry), mr
}

func TestCacheService_SetGet(t *testing.T) {
	cache, mr := newTestCache(t, 5)
	ctx := context.Background()

	info := map[string]int{"total_slots": 7, "used_slots": 2}
	require.NoError(t, cache.Set(ctx, AcademyCacheKey("club-1"), info, time.Minute))

	var got map[string]int
	require.NoError(t, cache.Get(ctx, AcademyCacheKey("club-1"), &got))
	assert.Equal(t, info, got)

	exists, err := cache.Exists(ctx, "academy:club-1")
	require.NoError(t, err)
	assert.True(t, exists)

	mr.FastForward(2 * time.Minute)
	assert.ErrorIs(t, cache.Get(ctx, AcademyCacheKey("club-1"), &got), ErrCacheMiss)
}

func TestCacheService_MissDoesNotTripBreaker(t *testing.T) {
	cache, _ := newTestCache(t, 2)
	ctx := context.Background()

	var dest map[string]int
	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, cache.Get(ctx, "lineup:none", &dest), ErrCacheMiss)
	}
	assert.Equal(t, gobreaker.StateClosed, cache.State())
}

func TestCacheService_Delete(t *testing.T) {
	cache, _ := newTestCache(t, 5)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, LineupCacheKey("c"), []string{"p1"}, 0))
	require.NoError(t, cache.Delete(ctx, LineupCacheKey("c")))

	exists, err := cache.Exists(ctx, LineupCacheKey("c"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCacheService_BreakerOpensWhenRedisIsDown(t *testing.T) {
	cache, mr := newTestCache(t, 2)
	ctx := context.Background()
	mr.Close()

	for i := 0; i < 2; i++ {
		assert.Error(t, cache.Set(ctx, "k", 1, 0))
	}
	assert.Equal(t, gobreaker.StateOpen, cache.State())

	err := cache.Set(ctx, "k", 1, 0)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
