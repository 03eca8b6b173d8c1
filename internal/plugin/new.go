package plugin

import (
	"sync"

	"personal-assistant/pkg/log"
)

// Registry holds plugins in registration order and routes input to them.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
	taken   map[string]struct{}
	l       log.Logger
}

// entry pairs a plugin with the name it was registered under.
type entry struct {
	name   string
	plugin Plugin
}

// NewRegistry creates an empty registry.
func NewRegistry(l log.Logger) *Registry {
	if l == nil {
		l = log.NewNop()
	}
	return &Registry{
		taken: make(map[string]struct{}),
		l:      l,
	}
}
