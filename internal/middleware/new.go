package middleware

import (
	"personal-assistant/pkg/log"
)

// Middleware bundles the gin middlewares of the web front-end.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// Config holds middleware options.
type Config struct {
	RequestsPerMin int // Per client IP; 0 disables rate limiting
}

func New(l log.Logger, cfg Config) Middleware {
	if l == nil {
		l = log.NewNop()
	}
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
