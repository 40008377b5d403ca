package middleware

import (
	"companion-core/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l       log.Logger
	limiter *clientRateLimiter
}

// Config tunes the middleware set.
type Config struct {
	// RequestsPerMin throttles each client IP. Zero disables throttling.
	RequestsPerMin int
}

func New(l log.Logger, cfg Config) Middleware {
	var limiter *clientRateLimiter
	if cfg.RequestsPerMin > 0 {
		limiter = newClientRateLimiter(cfg.RequestsPerMin)
	}

	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
