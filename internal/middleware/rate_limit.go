package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"companion-core/pkg/response"
)

var errTooManyRequests = errors.New("too many requests")

// RateLimit throttles requests per client IP with a token bucket. When no
// limiter is configured the middleware is a no-op.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil || mw.limiter.Allow(c.ClientIP()) {
			c.Next()
			return
		}

		mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
		response.ErrorWithStatus(c, http.StatusTooManyRequests, errTooManyRequests)
		c.Abort()
	}
}

// clientRateLimiter keeps one token bucket per client, evicting idle
// clients so the map stays bounded.
type clientRateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newClientRateLimiter(requestsPerMin int) *clientRateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}

	return &clientRateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max tracked clients
			nil,           // no eviction callback
			time.Minute*5, // idle TTL
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *clientRateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
