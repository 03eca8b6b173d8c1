package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"personal-assistant/internal/model"
)

// Config holds all assistant configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Assistant core
	Assistant AssistantConfig
	AI        AIConfig
	UI        UIConfig

	// Per plugin options, keyed by plugin name
	Plugins map[string]PluginConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int // Mirrors ui.web_port
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	File         string // Optional log file; stderr is always used otherwise
}

type RateLimitConfig struct {
	RequestsPerMin int // 0 disables rate limiting
}

type AssistantConfig struct {
	Name         string
	HistoryLimit int           // Max exchanges kept per session
	SessionTTL   time.Duration // Idle lifetime of a web session
	MaxSessions  int           // Max concurrent web sessions
}

// AIConfig is carried for the conversational integration point. No model is
// invoked yet.
type AIConfig struct {
	Provider    string
	Model       string
	APIKey      string
	Temperature float64
	MaxTokens   int
}

type UIConfig struct {
	DefaultInterface string // cli, web, voice
	VoiceEnabled     bool
	WebPort          int
}

// PluginConfig is the per plugin section under plugins.<name>.
type PluginConfig struct {
	Enabled  bool
	MaxTasks int
}

// Load loads configuration using Viper.
// An explicit path must exist. Without one, config.yaml is searched in
// ./config, . and /etc/personal-assistant/ and may be absent.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/personal-assistant/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: error reading config file: %v", model.ErrConfiguration, err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.File = v.GetString("logger.file")
	if level := v.GetString("log_level"); level != "" {
		cfg.Logger.Level = level
	}
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Assistant
	cfg.Assistant.Name = v.GetString("assistant.name")
	cfg.Assistant.HistoryLimit = v.GetInt("assistant.history_limit")
	cfg.Assistant.SessionTTL = v.GetDuration("assistant.session_ttl")
	cfg.Assistant.MaxSessions = v.GetInt("assistant.max_sessions")

	// AI
	cfg.AI.Provider = v.GetString("ai.provider")
	cfg.AI.Model = v.GetString("ai.model")
	cfg.AI.APIKey = v.GetString("ai.api_key")
	cfg.AI.Temperature = v.GetFloat64("ai.temperature")
	cfg.AI.MaxTokens = v.GetInt("ai.max_tokens")
	if apiKey := v.GetString("openai_api_key"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if aiModel := v.GetString("ai_model"); aiModel != "" {
		cfg.AI.Model = aiModel
	}
	if v.IsSet("ai_temperature") {
		cfg.AI.Temperature = v.GetFloat64("ai_temperature")
	}

	// UI
	cfg.UI.DefaultInterface = v.GetString("ui.default_interface")
	cfg.UI.VoiceEnabled = v.GetBool("ui.voice_enabled")
	cfg.UI.WebPort = v.GetInt("ui.web_port")
	if v.IsSet("web_port") {
		cfg.UI.WebPort = v.GetInt("web_port")
	}
	if v.IsSet("voice_enabled") {
		cfg.UI.VoiceEnabled = strings.EqualFold(v.GetString("voice_enabled"), "true")
	}
	cfg.HTTPServer.Port = cfg.UI.WebPort

	// Plugins
	cfg.Plugins = make(map[string]PluginConfig)
	for name := range v.GetStringMap("plugins") {
		key := "plugins." + name
		enabled := true
		if v.IsSet(key + ".enabled") {
			enabled = v.GetBool(key + ".enabled")
		}
		cfg.Plugins[name] = PluginConfig{
			Enabled:  enabled,
			MaxTasks: v.GetInt(key + ".max_tasks"),
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Plugin returns the options for name. Plugins without a section are enabled
// with zero-value options.
func (c *Config) Plugin(name string) PluginConfig {
	if c == nil || c.Plugins == nil {
		return PluginConfig{Enabled: true}
	}
	pc, ok := c.Plugins[name]
	if !ok {
		return PluginConfig{Enabled: true}
	}
	return pc
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)

	v.SetDefault("assistant.name", "Personal Assistant")
	v.SetDefault("assistant.history_limit", 50)
	v.SetDefault("assistant.session_ttl", "30m")
	v.SetDefault("assistant.max_sessions", 1000)

	// AI defaults
	v.SetDefault("ai.provider", "openai")
	v.SetDefault("ai.model", "gpt-3.5-turbo")
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.max_tokens", 1000)

	v.SetDefault("ui.default_interface", "cli")
	v.SetDefault("ui.voice_enabled", false)
	v.SetDefault("ui.web_port", 8501)
}
