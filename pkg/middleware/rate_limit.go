package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware throttles per viewer and path using a redis counter
// with a sliding expiry. Anonymous requests fall back to the client IP.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := c.Get("user_email")
		if !ok || caller == "" {
			caller = c.ClientIP()
		}

		key := fmt.Sprintf("throttle:%s:%s", c.Request.URL.Path, caller)

		ctx := c.Request.Context()
		hits, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
			c.Abort()
			return
		}

		if hits == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if hits > int64(limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
