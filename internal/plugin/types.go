package plugin

import (
	"time"

	"personal-assistant/internal/model"
)

// Descriptor describes a registered plugin.
type Descriptor struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities,omitempty"`
	Commands     []string `json:"commands,omitempty"`
}

// ExecContext is handed to Execute alongside the raw input.
type ExecContext struct {
	Scope     model.Scope
	Input     string
	Timestamp time.Time
}

// RouteResult is the outcome of Registry.Route.
// Handled is false only when no plugin accepted the input.
type RouteResult struct {
	Plugin   string
	Response string
	Handled  bool
	Err      error // *Error when the chosen plugin failed
}
