package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter counts requests per key in fixed windows stored in Redis
type RateLimiter struct {
	redis  *redis.Client
	prefix string
}

// NewRateLimiter connects to redisURL and verifies the connection
func NewRateLimiter(ctx context.Context, redisURL string) (*RateLimiter, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return NewRateLimiterFromClient(client), nil
}

// NewRateLimiterFromClient wraps an existing client
func NewRateLimiterFromClient(client *redis.Client) *RateLimiter {
	return &RateLimiter{
		redis:  client,
		prefix: "trainit:ratelimit",
	}
}

// Allow records one hit for key in the current window and reports whether the hit is within limit,
// together with the hit count of the window
func (rl *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, error) {
	seconds := int64(window / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	windowKey := fmt.Sprintf("%s:%s:%d", rl.prefix, key, time.Now().Unix()/seconds)

	pipe := rl.redis.TxPipeline()
	incr := pipe.Incr(ctx, windowKey)
	pipe.Expire(ctx, windowKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("rate limit pipeline failed: %w", err)
	}

	count := int(incr.Val())
	return count <= limit, count, nil
}

// Close closes the underlying Redis client
func (rl *RateLimiter) Close() error {
	return rl.redis.Close()
}
