package plugin

import "context"

// Plugin is a capability unit the Registry can route input to.
type Plugin interface {
	// Descriptor returns the static metadata of the plugin.
	Descriptor() Descriptor

	// CanHandle reports whether the plugin wants this input.
	CanHandle(input string) bool

	// Execute handles input and returns the text reply.
	Execute(ctx context.Context, input string, ec ExecContext) (string, error)
}

// Commander is implemented by plugins that list example commands.
type Commander interface {
	Commands() []string
}

// Helper is implemented by plugins that provide a help text.
type Helper interface {
	Help() string
}
