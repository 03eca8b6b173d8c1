package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"personal-assistant/internal/conversation"
	"personal-assistant/internal/model"
	"personal-assistant/internal/plugin"
)

// Handle processes one user input. Blank input returns ErrEmptyInput and is
// not recorded. Every other input produces exactly one recorded exchange,
// including when the chosen plugin or the responder fails. Plugins, the
// responder and the history all see the input as given.
func (a *Assistant) Handle(ctx context.Context, input string) (Reply, error) {
	if strings.TrimSpace(input) == "" {
		return Reply{}, ErrEmptyInput
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	ec := plugin.ExecContext{
		Scope:     a.scope,
		Input:     input,
		Timestamp: a.now(),
	}

	var reply Reply
	res := a.router.Route(ctx, input, ec)
	switch {
	case res.Handled && res.Err != nil:
		reply = Reply{
			Text:    fmt.Sprintf(MsgPluginFailed, res.Plugin, pluginCause(res.Err)),
			Plugin:  res.Plugin,
			Handled: true,
			Err:     res.Err,
		}
	case res.Handled:
		reply = Reply{Text: res.Response, Plugin: res.Plugin, Handled: true}
	default:
		text, err := a.responder.Respond(ctx, input)
		if err != nil {
			a.l.Errorf(ctx, "%s: responder failed: %v", LogPrefixHandle, err)
			text = fmt.Sprintf(MsgResponderError, err)
		}
		reply = Reply{Text: text, Err: err}
	}

	reply.Exchange = a.history.Record(input, reply.Text)
	a.l.Debugf(ctx, "%s: session=%s plugin=%q handled=%t", LogPrefixHandle, a.scope.SessionID, reply.Plugin, reply.Handled)
	return reply, nil
}

// Capabilities returns the plugin descriptors in registration order.
func (a *Assistant) Capabilities() []plugin.Descriptor {
	return a.router.Descriptors()
}

func (a *Assistant) ResetHistory() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.history.Reset()
	a.l.Debugf(context.Background(), "%s: conversation history reset for session %s", LogPrefixResetHistory, a.scope.SessionID)
}

// History returns the last k exchanges, oldest first.
func (a *Assistant) History(k int) []conversation.Exchange {
	return a.history.Recent(k)
}

func (a *Assistant) Status() Status {
	names := a.router.Names()
	st := Status{
		Name:                  a.name,
		PluginsLoaded:         len(names),
		Plugins:               names,
		ConversationAvailable: a.responder.Available(),
		ConversationActive:    a.history.Len() > 0,
		HistorySize:           a.history.Len(),
		HistoryLimit:          a.history.Limit(),
	}
	if last, ok := a.history.Last(); ok {
		ts := last.Timestamp
		st.LastInteraction = &ts
	}
	return st
}

func (a *Assistant) Name() string {
	return a.name
}

func (a *Assistant) Scope() model.Scope {
	return a.scope
}

// pluginCause strips the *plugin.Error wrapper so replies show the cause only.
func pluginCause(err error) error {
	var perr *plugin.Error
	if errors.As(err, &perr) && perr.Err != nil {
		return perr.Err
	}
	return err
}
