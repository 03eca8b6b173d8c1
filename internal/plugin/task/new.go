package task

import (
	"personal-assistant/internal/plugin"
	"personal-assistant/pkg/log"
)

// Plugin manages an in-memory task list.
type Plugin struct {
	l     log.Logger
	store *store
}

var (
	_ plugin.Plugin    = (*Plugin)(nil)
	_ plugin.Commander = (*Plugin)(nil)
	_ plugin.Helper    = (*Plugin)(nil)
)

// New creates a task plugin with an empty task list.
func New(l log.Logger, cfg Config) *Plugin {
	if l == nil {
		l = log.NewNop()
	}
	return &Plugin{
		l:     l,
		store: newStore(cfg.MaxTasks),
	}
}
