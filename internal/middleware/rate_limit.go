package middleware

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"personal-assistant/pkg/response"
)

// RateLimit rejects clients exceeding the configured rate with 429.
// It is a no-op when rate limiting is disabled.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil {
			c.Next()
			return
		}

		if err := mw.limiter.Allow(c.ClientIP()); err != nil {
			mw.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per client, dropping idle ones.
type rateLimiter struct {
	mu       sync.Mutex // Guards the lookup-or-create of a bucket
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterCacheTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	if !rl.bucket(key).Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}

func (rl *rateLimiter) bucket(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}
