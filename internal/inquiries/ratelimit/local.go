package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const maxTrackedKeys = 10000

type localEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Local is an in-process token bucket per key, used when Redis is disabled.
type Local struct {
	mu     sync.Mutex
	keys   map[string]*localEntry
	every  rate.Limit
	burst  int
	window time.Duration
	now    func() time.Time
}

// NewLocal allows a burst of limit hits per key, refilled evenly over window.
func NewLocal(limit int, window time.Duration) *Local {
	return &Local{
		keys:   make(map[string]*localEntry),
		every:  rate.Every(window / time.Duration(limit)),
		burst:  limit,
		window: window,
		now:    time.Now,
	}
}

func (l *Local) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.keys[key]
	if !ok {
		if len(l.keys) >= maxTrackedKeys {
			l.evictIdle(now)
		}
		e = &localEntry{limiter: rate.NewLimiter(l.every, l.burst)}
		l.keys[key] = e
	}
	e.lastSeen = now

	return e.limiter.AllowN(now, 1), nil
}

// evictIdle drops buckets untouched for a full window; they would be full again anyway.
func (l *Local) evictIdle(now time.Time) {
	for k, e := range l.keys {
		if now.Sub(e.lastSeen) >= l.window {
			delete(l.keys, k)
		}
	}
}
