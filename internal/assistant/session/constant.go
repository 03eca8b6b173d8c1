package session

import "time"

const (
	DefaultMaxSessions = 1000
	DefaultTTL         = 30 * time.Minute
)

// Log prefixes
const (
	LogPrefixAcquire = "internal.assistant.session.Acquire"
	LogPrefixRemove  = "internal.assistant.session.Remove"
	LogPrefixEvict   = "internal.assistant.session.onEvict"
)
