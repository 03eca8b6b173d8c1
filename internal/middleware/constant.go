package middleware

import "time"

const HeaderRequestID = "X-Request-ID"

// Rate limiter cache bounds
const (
	limiterCacheSize = 1000
	limiterCacheTTL  = 5 * time.Minute
)
