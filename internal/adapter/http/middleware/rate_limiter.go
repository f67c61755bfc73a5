package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"

	"todoapi/internal/core/model/response"
	"todoapi/pkg/config"
	"todoapi/pkg/telemetry"
)

type rateLimitEntry struct {
	Count     int
	ResetTime time.Time
}

// RateLimiter enforces fixed windows per path prefix. Authenticated
// requests are keyed by user id, anonymous ones by client IP.
type RateLimiter struct {
	cache   *gocache.Cache
	configs map[string]config.RateLimitConfig
	metrics *telemetry.AppMetrics
}

func NewRateLimiter(configs map[string]config.RateLimitConfig, metrics *telemetry.AppMetrics) *RateLimiter {
	return &RateLimiter{
		cache:   gocache.New(5*time.Minute, 10*time.Minute),
		configs: configs,
		metrics: metrics,
	}
}

func (rl *RateLimiter) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := rl.configForPath(c.FullPath())

		if !ok {
			c.Next()
			return
		}

		key := rl.clientKey(c)
		now := time.Now()

		entry := rateLimitEntry{Count: 0, ResetTime: now.Add(limit.Window)}

		if cached, found := rl.cache.Get(key); found {
			entry = cached.(rateLimitEntry)

			if now.After(entry.ResetTime) {
				entry = rateLimitEntry{Count: 0, ResetTime: now.Add(limit.Window)}
			}
		}

		entry.Count++
		rl.cache.Set(key, entry, limit.Window)

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(0, limit.Requests-entry.Count)))

		if entry.Count > limit.Requests {
			if rl.metrics != nil {
				rl.metrics.RecordRateLimitHit(c.Request.Context(), c.FullPath())
			}

			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.MessageResponse{
				Message: "Too many requests",
			})
			return
		}

		if rl.metrics != nil {
			rl.metrics.RecordRateLimitAllowed(c.Request.Context(), c.FullPath())
		}

		c.Next()
	}
}

func (rl *RateLimiter) configForPath(fullPath string) (config.RateLimitConfig, bool) {
	if cfg, ok := rl.configs[fullPath]; ok {
		return cfg, true
	}

	// PUT /todos/:id and DELETE /todos/:id share the /todos budget.
	for prefix, cfg := range rl.configs {
		if len(fullPath) > len(prefix) && fullPath[:len(prefix)] == prefix {
			return cfg, true
		}
	}

	return config.RateLimitConfig{}, false
}

func (rl *RateLimiter) clientKey(c *gin.Context) string {
	if userID := c.GetInt(UserIDKey); userID != 0 {
		return fmt.Sprintf("rate:%s:user:%d", c.FullPath(), userID)
	}

	return fmt.Sprintf("rate:%s:ip:%s", c.FullPath(), c.ClientIP())
}
