// Package ratelimit throttles contact submissions per client.
package ratelimit

import (
	"context"
	"errors"
)

// ErrLimiterUnavailable is returned when the backing store cannot be reached.
var ErrLimiterUnavailable = errors.New("rate limiter unavailable")

// Limiter decides whether one more submission for key is allowed now.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
