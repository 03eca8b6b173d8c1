package assistant

import (
	"time"

	"personal-assistant/internal/conversation"
	"personal-assistant/internal/model"
)

// Options configures a new Assistant. Nil collaborators get defaults.
type Options struct {
	Name      string
	Scope     model.Scope
	Router    Router
	History   *conversation.History
	Responder conversation.Responder
	Clock     func() time.Time
}

// Reply is the outcome of one Handle call.
type Reply struct {
	Text     string
	Plugin   string // Empty when the responder answered
	Handled  bool   // A plugin accepted the input
	Err      error  // Plugin or responder failure; Text already describes it
	Exchange conversation.Exchange
}

// Status summarises the assistant state for front-ends.
type Status struct {
	Name                  string     `json:"name"`
	PluginsLoaded         int        `json:"plugins_loaded"`
	Plugins               []string   `json:"plugins"`
	ConversationAvailable bool       `json:"conversation_available"`
	ConversationActive    bool       `json:"conversation_active"`
	LastInteraction       *time.Time `json:"last_interaction,omitempty"`
	HistorySize           int        `json:"history_size"`
	HistoryLimit          int        `json:"history_limit"`
}
