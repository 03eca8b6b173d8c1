package http

// HeaderSessionID carries the session id in both directions.
const HeaderSessionID = "X-Session-ID"

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 500
)
