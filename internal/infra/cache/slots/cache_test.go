package slots

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	"github.com/m04kA/SMC-NailStudio/pkg/metrics"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis, *metrics.Metrics) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	return NewRedisCache(client, time.Hour, m), mr, m
}

func TestRedisCache_SetGet(t *testing.T) {
	cache, mr, m := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	slots := []domain.Slot{{Time: "09:00"}, {Time: "10:00", IsOccupied: true}}

	_, ok, err := cache.Get(ctx, date)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, date, slots))
	assert.True(t, mr.Exists("slots:2025-06-14"))
	assert.Equal(t, time.Hour, mr.TTL("slots:2025-06-14"))

	got, ok, err := cache.Get(ctx, date)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, slots, got)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SlotCacheRequests.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SlotCacheRequests.WithLabelValues("miss")))
}

func TestRedisCache_Expires(t *testing.T) {
	cache, mr, _ := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	require.NoError(t, cache.Set(ctx, date, []domain.Slot{{Time: "09:00"}}))
	mr.FastForward(time.Hour + time.Second)

	_, ok, err := cache.Get(ctx, date)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_Invalidate(t *testing.T) {
	cache, mr, _ := newTestCache(t)
	ctx := context.Background()
	day1 := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	require.NoError(t, cache.Set(ctx, day1, []domain.Slot{{Time: "09:00"}}))
	require.NoError(t, cache.Set(ctx, day2, []domain.Slot{{Time: "09:00"}}))
	require.NoError(t, mr.Set("other", "keep"))

	require.NoError(t, cache.Invalidate(ctx, day1))
	assert.False(t, mr.Exists(Key(day1)))
	assert.True(t, mr.Exists(Key(day2)))

	require.NoError(t, cache.InvalidateAll(ctx))
	assert.False(t, mr.Exists(Key(day2)))
	assert.True(t, mr.Exists("other"))
}

func TestRedisCache_CorruptedValue(t *testing.T) {
	cache, mr, _ := newTestCache(t)
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	require.NoError(t, mr.Set(Key(date), "not-json"))

	_, ok, err := cache.Get(context.Background(), date)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrCacheDecode)
}

func TestRedisCache_Unavailable(t *testing.T) {
	cache, mr, _ := newTestCache(t)
	mr.Close()

	_, _, err := cache.Get(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrCacheRead)
}
