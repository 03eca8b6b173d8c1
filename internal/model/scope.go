package model

// Scope identifies who is talking to an assistant instance.
type Scope struct {
	SessionID string // Front-end session (CLI process, web session header)
	UserID    string // Optional user identity, e.g. "cli_local" or the client IP
	Channel   Channel
}

// Channel is the front-end an input arrived through.
type Channel string

const (
	ChannelCLI   Channel = "cli"
	ChannelWeb   Channel = "web"
	ChannelVoice Channel = "voice"
)
