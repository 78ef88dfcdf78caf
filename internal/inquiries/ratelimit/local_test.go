package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocalLimiter(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	l := NewLocal(3, time.Hour)
	l.now = func() time.Time { return clock }

	for i := 0; i < 3; i++ {
		ok, _ := l.Allow(ctx, "a")
		assert.True(t, ok, "hit %d", i)
	}
	ok, _ := l.Allow(ctx, "a")
	assert.False(t, ok)

	ok, _ = l.Allow(ctx, "b")
	assert.True(t, ok)

	// One token refills every 20 minutes.
	clock = clock.Add(20 * time.Minute)
	ok, _ = l.Allow(ctx, "a")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "a")
	assert.False(t, ok)
}

func TestLocalLimiterEvictsIdleKeys(t *testing.T) {
	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	l := NewLocal(1, time.Minute)
	l.now = func() time.Time { return clock }

	_, _ = l.Allow(context.Background(), "old")
	clock = clock.Add(2 * time.Minute)
	l.evictIdle(clock)

	assert.Empty(t, l.keys)
}
