package conversation

// DefaultHistoryLimit is used when NewHistory gets a non-positive limit.
const DefaultHistoryLimit = 50

// Placeholder replies
const (
	MsgPlaceholderReply = "I understand you said: '%s'. I'm still learning how to help you better!"
	MsgNotInitialized   = "I'm not properly initialized yet. Please check the configuration."
)
