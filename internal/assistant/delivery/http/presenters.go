package http

import (
	"fmt"
	"strings"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/conversation"
	"personal-assistant/internal/plugin"
	"personal-assistant/pkg/response"
)

// --- Request DTOs ---

type sendMessageReq struct {
	Text string `json:"text" binding:"required"`
}

func (r sendMessageReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return assistant.ErrEmptyInput
	}
	return nil
}

type historyReq struct {
	Limit int `form:"limit"`
}

func (r historyReq) validate() error {
	if r.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", errBadRequest)
	}
	return nil
}

func (r historyReq) limit() int {
	switch {
	case r.Limit == 0:
		return defaultHistoryLimit
	case r.Limit > maxHistoryLimit:
		return maxHistoryLimit
	}
	return r.Limit
}

// --- Response DTOs ---

type messageResp struct {
	Reply     string            `json:"reply"`
	Plugin    string            `json:"plugin,omitempty"`
	Handled   bool              `json:"handled"`
	SessionID string            `json:"session_id"`
	Timestamp response.DateTime `json:"timestamp"`
}

func newMessageResp(sessionID string, r assistant.Reply) messageResp {
	return messageResp{
		Reply:     r.Text,
		Plugin:    r.Plugin,
		Handled:   r.Handled,
		SessionID: sessionID,
		Timestamp: response.DateTime(r.Exchange.Timestamp),
	}
}

type pluginResp struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
	Commands     []string `json:"commands"`
}

type capabilitiesResp struct {
	Plugins []pluginResp `json:"plugins"`
}

func newCapabilitiesResp(descs []plugin.Descriptor) capabilitiesResp {
	out := capabilitiesResp{Plugins: make([]pluginResp, len(descs))}
	for i, d := range descs {
		out.Plugins[i] = pluginResp{
			Name:         d.Name,
			Description:  d.Description,
			Version:      d.Version,
			Capabilities: d.Capabilities,
			Commands:     d.Commands,
		}
	}
	return out
}

type statusResp struct {
	Name                  string             `json:"name"`
	SessionID             string             `json:"session_id"`
	PluginsLoaded         int                `json:"plugins_loaded"`
	Plugins               []string           `json:"plugins"`
	ConversationAvailable bool               `json:"conversation_available"`
	ConversationActive    bool               `json:"conversation_active"`
	LastInteraction       *response.DateTime `json:"last_interaction"`
	HistorySize           int                `json:"history_size"`
	HistoryLimit          int                `json:"history_limit"`
}

func newStatusResp(sessionID string, st assistant.Status) statusResp {
	out := statusResp{
		Name:                  st.Name,
		SessionID:             sessionID,
		PluginsLoaded:         st.PluginsLoaded,
		Plugins:               st.Plugins,
		ConversationAvailable: st.ConversationAvailable,
		ConversationActive:    st.ConversationActive,
		HistorySize:           st.HistorySize,
		HistoryLimit:          st.HistoryLimit,
	}
	if st.LastInteraction != nil {
		ts := response.DateTime(*st.LastInteraction)
		out.LastInteraction = &ts
	}
	return out
}

type exchangeResp struct {
	Input     string            `json:"input"`
	Response  string            `json:"response"`
	Timestamp response.DateTime `json:"timestamp"`
}

type historyResp struct {
	Exchanges []exchangeResp `json:"exchanges"`
	Total     int            `json:"total"`
}

func newHistoryResp(exchanges []conversation.Exchange, total int) historyResp {
	out := historyResp{Exchanges: make([]exchangeResp, len(exchanges)), Total: total}
	for i, ex := range exchanges {
		out.Exchanges[i] = exchangeResp{
			Input:     ex.Input,
			Response:  ex.Response,
			Timestamp: response.DateTime(ex.Timestamp),
		}
	}
	return out
}
