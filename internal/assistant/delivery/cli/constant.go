package cli

// Log prefixes
const (
	LogPrefixRun = "internal.assistant.delivery.cli.Run"
	LogPrefixAsk = "internal.assistant.delivery.cli.Ask"
)

// Built-in commands
const (
	cmdHelp         = "help"
	cmdStatus       = "status"
	cmdCapabilities = "capabilities"
	cmdHistory      = "history"
	cmdReset        = "reset"
)

var quitCommands = map[string]bool{"quit": true, "exit": true, "bye": true}

// historyShown is the number of exchanges the history command prints.
const historyShown = 10

// Terminal messages
const (
	MsgWelcome   = "Type 'help' for available commands or 'quit' to exit."
	MsgVoiceStub = "⚠️  Voice mode requested, but voice input/output is not available yet. Continuing in text mode."
	MsgPrompt    = "🤖 > "
	MsgGoodbye   = "👋 Goodbye!"
	MsgReset     = "🔄 Conversation reset!"
	MsgReply     = "🤖 %s\n\n"
	MsgError     = "❌ Error: %v\n"
	MsgNoPlugins = "No plugins loaded"
	MsgNoHistory = "No conversation history yet."
)

var builtinHelp = [][2]string{
	{cmdHelp, "Show this help message"},
	{cmdStatus, "Show assistant status"},
	{cmdCapabilities, "Show available capabilities"},
	{cmdHistory, "Show recent conversation history"},
	{cmdReset, "Reset conversation history"},
	{"quit/exit/bye", "Exit the assistant"},
}
