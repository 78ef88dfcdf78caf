package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisLimiter(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	l := NewRedis(client, 2, time.Hour)

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := l.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, ok, "third hit in the window is rejected")

	ok, err = l.Allow(ctx, "198.51.100.2")
	require.NoError(t, err)
	assert.True(t, ok, "other clients have their own window")

	ttl := mr.TTL(keyPrefix + "203.0.113.7")
	assert.True(t, ttl > 0 && ttl <= time.Hour)

	mr.FastForward(time.Hour + time.Second)

	ok, err = l.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, ok, "window resets after expiry")
}

func TestRedisLimiterUnavailable(t *testing.T) {
	mr, client := setupRedis(t)
	l := NewRedis(client, 1, time.Minute)
	mr.Close()

	_, err := l.Allow(context.Background(), "k")
	assert.ErrorIs(t, err, ErrLimiterUnavailable)
}

func TestRedisLimiterHealsCounterWithoutTTL(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	l := NewRedis(client, 2, time.Hour)

	// A counter left over the limit with no expiry.
	require.NoError(t, mr.Set(keyPrefix+"203.0.113.9", "7"))
	require.Equal(t, time.Duration(0), mr.TTL(keyPrefix+"203.0.113.9"))

	ok, err := l.Allow(ctx, "203.0.113.9")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+"203.0.113.9"))

	mr.FastForward(48 * time.Hour)

	ok, err = l.Allow(ctx, "203.0.113.9")
	require.NoError(t, err)
	assert.True(t, ok, "client is admitted again once the window has passed")
}

func TestRedisLimiterKeepsExistingWindow(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	l := NewRedis(client, 5, time.Hour)

	_, err := l.Allow(ctx, "k")
	require.NoError(t, err)
	mr.FastForward(30 * time.Minute)

	_, err = l.Allow(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, mr.TTL(keyPrefix+"k"), "later hits do not extend the window")
}
