package assistant

// Log prefixes
const (
	LogPrefixHandle       = "internal.assistant.Handle"
	LogPrefixResetHistory = "internal.assistant.ResetHistory"
)

// Replies
const (
	MsgPluginFailed   = "Plugin %q failed: %v"
	MsgResponderError = "I'm sorry, I encountered an error: %v"
)

const DefaultName = "Personal Assistant"
