package session

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/model"
	"personal-assistant/pkg/log"
)

// Factory builds a fresh Assistant for a new session.
type Factory func(sc model.Scope) (*assistant.Assistant, error)

// Config bounds the pool.
type Config struct {
	MaxSessions int
	TTL         time.Duration // Idle lifetime; refreshed on every access
}

// Pool keeps one Assistant per session id. Idle sessions expire after TTL
// and the least recently used one is evicted beyond MaxSessions.
type Pool struct {
	mu      sync.Mutex
	cache   *expirable.LRU[string, *assistant.Assistant]
	factory Factory
	channel model.Channel
	l       log.Logger
}

func New(l log.Logger, cfg Config, channel model.Channel, factory Factory) *Pool {
	if l == nil {
		l = log.NewNop()
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	p := &Pool{
		factory: factory,
		channel: channel,
		l:       l,
	}
	p.cache = expirable.NewLRU[string, *assistant.Assistant](cfg.MaxSessions, p.onEvict, cfg.TTL)
	return p
}

func (p *Pool) onEvict(id string, _ *assistant.Assistant) {
	p.l.Debugf(context.Background(), "%s: session %s evicted", LogPrefixEvict, id)
}
