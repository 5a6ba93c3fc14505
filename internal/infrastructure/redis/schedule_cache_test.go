package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleCache(t *testing.T) {
	client := setupTestRedis(t)
	cache := NewScheduleCache(client, 30*time.Second)
	ctx := context.Background()
	movie, date := "test-movie", "2025-01-10"
	t.Cleanup(func() { cache.Invalidate(ctx, movie, date) })

	t.Run("キャッシュミス時はErrCacheMissを返す", func(t *testing.T) {
		require.NoError(t, cache.Invalidate(ctx, movie, date))

		_, err := cache.GetTheatres(ctx, movie, date)
		assert.ErrorIs(t, err, ErrCacheMiss)
		_, err = cache.GetShowTimes(ctx, movie, date, "Rajah")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("劇場と上映時刻を保存して取得できる", func(t *testing.T) {
		require.NoError(t, cache.SetTheatres(ctx, movie, date, []string{"CPVR Cinema", "Rajah"}))
		require.NoError(t, cache.SetShowTimes(ctx, movie, date, "Rajah", []string{"01:30 PM", "10:00 AM"}))

		theatres, err := cache.GetTheatres(ctx, movie, date)
		require.NoError(t, err)
		assert.Equal(t, []string{"CPVR Cinema", "Rajah"}, theatres)

		times, err := cache.GetShowTimes(ctx, movie, date, "Rajah")
		require.NoError(t, err)
		assert.Equal(t, []string{"01:30 PM", "10:00 AM"}, times)

		_, err = cache.GetShowTimes(ctx, movie, date, "Regal Cinema")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("無効化で映画・日付のキャッシュがすべて消える", func(t *testing.T) {
		require.NoError(t, cache.SetTheatres(ctx, movie, date, []string{"Rajah"}))
		require.NoError(t, cache.SetShowTimes(ctx, movie, date, "Rajah", []string{"10:00 AM"}))

		require.NoError(t, cache.Invalidate(ctx, movie, date))

		_, err := cache.GetTheatres(ctx, movie, date)
		assert.ErrorIs(t, err, ErrCacheMiss)
		_, err = cache.GetShowTimes(ctx, movie, date, "Rajah")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}

func TestScheduleCache_TTL(t *testing.T) {
	client := setupTestRedis(t)
	cache := NewScheduleCache(client, 100*time.Millisecond)
	ctx := context.Background()

	t.Run("TTL経過後はキャッシュミスになる", func(t *testing.T) {
		require.NoError(t, cache.SetTheatres(ctx, "test-movie-ttl", "2025-01-10", []string{"Rajah"}))

		// TTL経過前
		theatres, err := cache.GetTheatres(ctx, "test-movie-ttl", "2025-01-10")
		require.NoError(t, err)
		assert.Equal(t, []string{"Rajah"}, theatres)

		// TTL経過後
		time.Sleep(150 * time.Millisecond)
		_, err = cache.GetTheatres(ctx, "test-movie-ttl", "2025-01-10")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}
