package wiring

import (
	"context"
	"fmt"

	"personal-assistant/config"
	"personal-assistant/internal/assistant"
	assistantHTTP "personal-assistant/internal/assistant/delivery/http"
	"personal-assistant/internal/assistant/session"
	"personal-assistant/internal/conversation"
	"personal-assistant/internal/httpserver"
	"personal-assistant/internal/middleware"
	"personal-assistant/internal/model"
	"personal-assistant/internal/plugin"
	"personal-assistant/internal/plugin/task"
	"personal-assistant/pkg/log"
)

// PluginBuilder creates a plugin instance from its config section.
type PluginBuilder func(l log.Logger, pc config.PluginConfig) plugin.Plugin

type pluginEntry struct {
	name  string
	build PluginBuilder
}

// Container composes the application from config. Every assistant it builds
// gets fresh plugin instances, so no state is shared between sessions.
type Container struct {
	cfg     *config.Config
	l       log.Logger
	plugins []pluginEntry
}

func New(cfg *config.Config, l log.Logger) *Container {
	if l == nil {
		l = log.NewNop()
	}
	return &Container{
		cfg: cfg,
		l:   l,
		plugins: []pluginEntry{
			{name: task.PluginName, build: buildTaskPlugin},
		},
	}
}

// WithPlugin adds a plugin after the built-in ones. It is subject to the same
// plugins.<name>.enabled switch.
func (c *Container) WithPlugin(name string, build PluginBuilder) *Container {
	c.plugins = append(c.plugins, pluginEntry{name: name, build: build})
	return c
}

// NewLogger builds the logger from the logger section.
func NewLogger(cfg *config.Config) log.Logger {
	zc := log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	}
	if cfg.Logger.File != "" {
		zc.OutputPaths = []string{cfg.Logger.File}
	}
	return log.Init(zc)
}

// NewRegistry registers every enabled plugin in order.
func (c *Container) NewRegistry() (*plugin.Registry, error) {
	reg := plugin.NewRegistry(c.l)
	for _, e := range c.plugins {
		pc := c.cfg.Plugin(e.name)
		if !pc.Enabled {
			c.l.Infof(context.Background(), "wiring: plugin %q disabled", e.name)
			continue
		}
		if err := reg.Register(e.build(c.l, pc)); err != nil {
			return nil, fmt.Errorf("wiring.NewRegistry: %w", err)
		}
	}
	return reg, nil
}

// NewAssistant builds an assistant for sc. It satisfies session.Factory.
func (c *Container) NewAssistant(sc model.Scope) (*assistant.Assistant, error) {
	reg, err := c.NewRegistry()
	if err != nil {
		return nil, err
	}

	return assistant.New(c.l, assistant.Options{
		Name:      c.cfg.Assistant.Name,
		Scope:     sc,
		Router:    reg,
		History:   conversation.NewHistory(c.cfg.Assistant.HistoryLimit),
		Responder: conversation.NewPlaceholderResponder(),
	}), nil
}

// NewSessionPool builds the web session pool.
func (c *Container) NewSessionPool() *session.Pool {
	return session.New(c.l, session.Config{
		MaxSessions: c.cfg.Assistant.MaxSessions,
		TTL:         c.cfg.Assistant.SessionTTL,
	}, model.ChannelWeb, c.NewAssistant)
}

// NewHTTPServer builds the web front-end.
func (c *Container) NewHTTPServer() (*httpserver.HTTPServer, error) {
	return httpserver.New(c.l, httpserver.Config{
		Logger:           c.l,
		Port:             c.cfg.HTTPServer.Port,
		Mode:             c.cfg.HTTPServer.Mode,
		Environment:      c.cfg.Environment.Name,
		Middleware:       middleware.New(c.l, middleware.Config{RequestsPerMin: c.cfg.RateLimit.RequestsPerMin}),
		AssistantHandler: assistantHTTP.New(c.l, c.NewSessionPool()),
	})
}

func buildTaskPlugin(l log.Logger, pc config.PluginConfig) plugin.Plugin {
	return task.New(l, task.Config{MaxTasks: pc.MaxTasks})
}
