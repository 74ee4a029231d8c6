package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apperrors "trainit-backend/internal/errors"
	"trainit-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Limiter is the subset of ratelimit.RateLimiter used by the middleware
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, error)
}

// RateLimit limits each client IP to limit requests per window under the given key.
// A failing limiter lets the request through.
func RateLimit(rl Limiter, key string, limit int, window time.Duration) gin.HandlerFunc {
	if rl == nil || limit <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		allowed, count, err := rl.Allow(c.Request.Context(), fmt.Sprintf("%s:%s", key, c.ClientIP()), limit, window)
		if err != nil {
			logger.FromGinContext(c).WithError(err).Warn("Rate limit check failed")
			c.Next()
			return
		}

		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       apperrors.ErrRateLimitExceeded.Error(),
				"retry_after": window.Seconds(),
			})
			return
		}

		c.Next()
	}
}
