package conversation

import (
	"sync"
	"time"
)

// History is a bounded, chronological log of exchanges. Once the limit is
// reached the oldest exchange is dropped on every Record.
type History struct {
	mu        sync.RWMutex
	exchanges []Exchange
	limit     int
	now       func() time.Time
}

// NewHistory creates a History keeping at most limit exchanges.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	// Large limits grow on demand.
	return &History{
		exchanges: make([]Exchange, 0, min(limit, DefaultHistoryLimit)),
		limit:     limit,
		now:       time.Now,
	}
}

// WithClock replaces the timestamp source. Used by tests.
func (h *History) WithClock(now func() time.Time) *History {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.now = now
	return h
}

// Record appends a new exchange and returns it.
func (h *History) Record(input, response string) Exchange {
	h.mu.Lock()
	defer h.mu.Unlock()

	ex := Exchange{
		Input:     input,
		Response:  response,
		Timestamp: h.now(),
	}
	h.exchanges = append(h.exchanges, ex)
	if over := len(h.exchanges) - h.limit; over > 0 {
		copy(h.exchanges, h.exchanges[over:])
		h.exchanges = h.exchanges[:h.limit]
	}
	return ex
}

// Recent returns the last k exchanges, oldest first. k is clamped to [0, Len()].
func (h *History) Recent(k int) []Exchange {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := len(h.exchanges)
	if k < 0 {
		k = 0
	}
	if k > n {
		k = n
	}

	out := make([]Exchange, k)
	copy(out, h.exchanges[n-k:])
	return out
}

// All returns a copy of every stored exchange.
func (h *History) All() []Exchange {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Exchange, len(h.exchanges))
	copy(out, h.exchanges)
	return out
}

// Last returns the most recent exchange.
func (h *History) Last() (Exchange, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.exchanges) == 0 {
		return Exchange{}, false
	}
	return h.exchanges[len(h.exchanges)-1], true
}

func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.exchanges = h.exchanges[:0]
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.exchanges)
}

func (h *History) Limit() int {
	return h.limit
}
