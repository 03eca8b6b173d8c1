package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"personal-assistant/internal/assistant"
)

func (h *handler) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, MsgWelcome)
	if h.cfg.VoiceEnabled {
		fmt.Fprintln(out, MsgVoiceStub)
	}
	fmt.Fprintln(out)

	// The reader goroutine only stops early once Run has returned, so a closed
	// lines channel always has its scan error waiting.
	done := make(chan struct{})
	defer close(done)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		if h.cfg.Interactive {
			fmt.Fprint(out, MsgPrompt)
		}

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			fmt.Fprintln(out, MsgGoodbye)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				fmt.Fprintln(out, MsgGoodbye)
				if err := <-scanErr; err != nil {
					return fmt.Errorf("%s: read input: %w", LogPrefixRun, err)
				}
				return nil
			}
			line = strings.TrimSpace(l)
		}

		if line == "" {
			continue
		}
		if quit := h.dispatch(ctx, line, out); quit {
			fmt.Fprintln(out, MsgGoodbye)
			return nil
		}
	}
}

func (h *handler) Ask(ctx context.Context, question string, out io.Writer) error {
	reply, err := h.svc.Handle(ctx, question)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, reply.Text)
	if reply.Err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixAsk, reply.Err)
	}
	return nil
}

// dispatch runs a built-in command or sends line to the assistant. It reports
// whether the session should end.
func (h *handler) dispatch(ctx context.Context, line string, out io.Writer) bool {
	cmd := strings.ToLower(line)
	if quitCommands[cmd] {
		return true
	}

	switch cmd {
	case cmdHelp:
		renderHelp(out)
	case cmdStatus:
		renderStatus(out, h.svc.Status(), h.cfg.VoiceEnabled)
	case cmdCapabilities:
		renderCapabilities(out, h.svc.Capabilities())
	case cmdHistory:
		renderHistory(out, h.svc.History(historyShown))
	case cmdReset:
		h.svc.ResetHistory()
		fmt.Fprintln(out, MsgReset)
	default:
		reply, err := h.svc.Handle(ctx, line)
		if errors.Is(err, assistant.ErrEmptyInput) {
			return false
		}
		if err != nil {
			h.l.Errorf(ctx, "%s: %v", LogPrefixRun, err)
			fmt.Fprintf(out, MsgError, err)
			return false
		}
		fmt.Fprintf(out, MsgReply, reply.Text)
	}
	return false
}
