package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "site:inq:rl:" // site:inq:rl:{client key}

// Redis is a fixed window counter shared by every API instance.
type Redis struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRedis allows limit hits per key in each window.
func NewRedis(client *redis.Client, limit int, window time.Duration) *Redis {
	return &Redis{
		client: client,
		limit:  int64(limit),
		window: window,
	}
}

func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	k := keyPrefix + key

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		ttl = pipe.TTL(ctx, k)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrLimiterUnavailable, err)
	}

	// No TTL means a fresh window or an EXPIRE that never landed; open it now
	// so a counter can never outlive its window.
	if ttl.Val() < 0 {
		if err := r.client.Expire(ctx, k, r.window).Err(); err != nil {
			return false, fmt.Errorf("%w: %v", ErrLimiterUnavailable, err)
		}
	}

	return incr.Val() <= r.limit, nil
}
