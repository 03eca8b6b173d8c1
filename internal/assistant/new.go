package assistant

import (
	"sync"
	"time"

	"personal-assistant/internal/conversation"
	"personal-assistant/internal/model"
	"personal-assistant/internal/plugin"
	"personal-assistant/pkg/log"
)

// Assistant routes input to plugins, falls back to a responder and records
// every exchange. Handle calls are serialised.
type Assistant struct {
	mu        sync.Mutex
	name      string
	scope     model.Scope
	router    Router
	history   *conversation.History
	responder conversation.Responder
	now       func() time.Time
	l         log.Logger
}

func New(l log.Logger, opts Options) *Assistant {
	if l == nil {
		l = log.NewNop()
	}
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.Router == nil {
		opts.Router = plugin.NewRegistry(l)
	}
	if opts.History == nil {
		opts.History = conversation.NewHistory(conversation.DefaultHistoryLimit)
	}
	if opts.Responder == nil {
		opts.Responder = conversation.NewPlaceholderResponder()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &Assistant{
		name:      opts.Name,
		scope:     opts.Scope,
		router:    opts.Router,
		history:   opts.History,
		responder: opts.Responder,
		now:       opts.Clock,
		l:         l,
	}
}
