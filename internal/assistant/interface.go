package assistant

import (
	"context"

	"personal-assistant/internal/conversation"
	"personal-assistant/internal/plugin"
)

// Service is what front-ends talk to. *Assistant implements it.
type Service interface {
	// Handle processes one user input and records the exchange.
	Handle(ctx context.Context, input string) (Reply, error)

	// Capabilities lists the registered plugins in registration order.
	Capabilities() []plugin.Descriptor

	ResetHistory()
	Status() Status
	History(k int) []conversation.Exchange
}

// Router dispatches input to plugins. *plugin.Registry implements it.
type Router interface {
	Route(ctx context.Context, input string, ec plugin.ExecContext) plugin.RouteResult
	Descriptors() []plugin.Descriptor
	Names() []string
}

var _ Service = (*Assistant)(nil)
