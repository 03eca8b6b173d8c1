package cli

import (
	"context"
	"io"

	"personal-assistant/internal/assistant"
	pkgLog "personal-assistant/pkg/log"
)

// Handler drives an assistant from a terminal.
type Handler interface {
	// Run reads commands from in until EOF, a quit command or ctx is done.
	Run(ctx context.Context, in io.Reader, out io.Writer) error

	// Ask handles a single question and writes the reply.
	Ask(ctx context.Context, question string, out io.Writer) error
}

// Config holds front-end flags.
type Config struct {
	VoiceEnabled bool
	Interactive  bool // Show the prompt; false when input is piped
}

type handler struct {
	l   pkgLog.Logger
	svc assistant.Service
	cfg Config
}

func New(l pkgLog.Logger, svc assistant.Service, cfg Config) Handler {
	if l == nil {
		l = pkgLog.NewNop()
	}
	return &handler{
		l:   l,
		svc: svc,
		cfg: cfg,
	}
}
