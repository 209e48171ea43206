package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/kingrain94/catalog-api/internal/config"
	"github.com/kingrain94/catalog-api/internal/tenant"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

const rateLimitWindow = time.Minute

// RateLimitMiddleware counts requests per fixed one-minute window in Redis.
// While Redis is unreachable each instance falls back to an in-process token
// bucket with the same per-minute budget.
type RateLimitMiddleware struct {
	redis  redis.UniversalClient
	config *config.Config
	logger *logger.Logger

	mu       sync.Mutex
	fallback map[string]*rate.Limiter
}

func NewRateLimitMiddleware(redis redis.UniversalClient, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:    redis,
		config:   config,
		logger:   logger,
		fallback: make(map[string]*rate.Limiter),
	}
}

// TenantRateLimit applies the bound tenant's own limit, or the configured
// default when the tenant has none.
func (m *RateLimitMiddleware) TenantRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := tenant.FromContext(c.Request.Context())
		if !ok {
			c.Next()
			return
		}

		limit := t.RateLimit
		if limit <= 0 {
			limit = m.config.DefaultRateLimit
		}

		m.enforce(c, fmt.Sprintf("rate_limit:tenant:%s", t.ID), limit, "Rate limit exceeded")
	}
}

// GlobalRateLimit limits requests per client IP.
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.enforce(c, fmt.Sprintf("rate_limit:global:%s", c.ClientIP()), limit, "Global rate limit exceeded")
	}
}

func (m *RateLimitMiddleware) enforce(c *gin.Context, key string, limit int, message string) {
	ctx := c.Request.Context()
	reset := time.Now().Add(rateLimitWindow).Unix()

	current, err := m.redis.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		m.logger.Error("Redis error in rate limiting, using local limiter", err)
		if !m.allowLocal(key, limit) {
			m.reject(c, limit, reset, message)
			return
		}
		c.Next()
		return
	}

	if current >= limit {
		m.reject(c, limit, reset, message)
		return
	}

	pipe := m.redis.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rateLimitWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		m.logger.Error("Redis pipeline error in rate limiting", err)
	}

	remaining := limit - (current + 1)
	if remaining < 0 {
		remaining = 0
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

	c.Next()
}

func (m *RateLimitMiddleware) reject(c *gin.Context, limit int, reset int64, message string) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", "0")
	c.Header("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error": message,
		"limit": limit,
		"reset": reset,
	})
}

func (m *RateLimitMiddleware) allowLocal(key string, limit int) bool {
	m.mu.Lock()
	limiter, ok := m.fallback[key]
	if !ok || limiter.Burst() != limit {
		limiter = rate.NewLimiter(rate.Limit(float64(limit)/rateLimitWindow.Seconds()), limit)
		m.fallback[key] = limiter
	}
	m.mu.Unlock()

	return limiter.Allow()
}
