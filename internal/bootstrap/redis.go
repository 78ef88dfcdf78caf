package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vrgreentek/greentek-site/config"
	"github.com/vrgreentek/greentek-site/internal/inquiries/ratelimit"
)

// OpenLimiter returns a Redis-backed limiter shared across replicas when
// Redis is enabled, otherwise a process-local one. The client is nil when
// Redis is disabled.
func OpenLimiter(ctx context.Context, rc *config.RedisConfig, ic *config.InquiryConfig, log *zap.Logger) (ratelimit.Limiter, *redis.Client, error) {
	if !rc.Enabled {
		log.Info("redis disabled, using in-process rate limiter")
		return ratelimit.NewLocal(ic.RatePerHour, time.Hour), nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Info("connected to redis", zap.String("addr", rc.Addr))
	return ratelimit.NewRedis(client, ic.RatePerHour, time.Hour), client, nil
}
