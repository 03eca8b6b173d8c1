package config

import (
	"fmt"
	"strings"

	"personal-assistant/internal/model"
)

// MaxHistoryLimit bounds assistant.history_limit.
const MaxHistoryLimit = 10000

var (
	validInterfaces = map[string]bool{"cli": true, "web": true, "voice": true}
	validModes      = map[string]bool{"debug": true, "release": true, "test": true}
	validLevels     = map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
		"dpanic": true, "panic": true, "fatal": true,
	}
)

// Validate checks value ranges. Every failure wraps model.ErrConfiguration.
func (c *Config) Validate() error {
	if c.AI.Temperature < 0 || c.AI.Temperature > 2 {
		return fmt.Errorf("%w: ai.temperature must be between 0 and 2, got %v", model.ErrConfiguration, c.AI.Temperature)
	}
	if c.AI.MaxTokens <= 0 {
		return fmt.Errorf("%w: ai.max_tokens must be positive, got %d", model.ErrConfiguration, c.AI.MaxTokens)
	}
	if c.Assistant.HistoryLimit <= 0 || c.Assistant.HistoryLimit > MaxHistoryLimit {
		return fmt.Errorf("%w: assistant.history_limit must be between 1 and %d, got %d", model.ErrConfiguration, MaxHistoryLimit, c.Assistant.HistoryLimit)
	}
	if c.Assistant.MaxSessions <= 0 {
		return fmt.Errorf("%w: assistant.max_sessions must be positive, got %d", model.ErrConfiguration, c.Assistant.MaxSessions)
	}
	if c.Assistant.SessionTTL <= 0 {
		return fmt.Errorf("%w: assistant.session_ttl must be positive", model.ErrConfiguration)
	}
	if !validInterfaces[strings.ToLower(c.UI.DefaultInterface)] {
		return fmt.Errorf("%w: ui.default_interface %q is not one of cli, web, voice", model.ErrConfiguration, c.UI.DefaultInterface)
	}
	if c.UI.WebPort <= 0 || c.UI.WebPort > 65535 {
		return fmt.Errorf("%w: ui.web_port %d is out of range", model.ErrConfiguration, c.UI.WebPort)
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("%w: unknown logger.level %q", model.ErrConfiguration, c.Logger.Level)
	}
	if !validModes[c.HTTPServer.Mode] {
		return fmt.Errorf("%w: http_server.mode %q is not one of debug, release, test", model.ErrConfiguration, c.HTTPServer.Mode)
	}
	if c.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("%w: rate_limit.requests_per_min must not be negative", model.ErrConfiguration)
	}
	for name, pc := range c.Plugins {
		if pc.MaxTasks < 0 {
			return fmt.Errorf("%w: plugins.%s.max_tasks must not be negative", model.ErrConfiguration, name)
		}
	}
	return nil
}
