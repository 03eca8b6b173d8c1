package conversation

import (
	"context"
	"fmt"
)

// Responder produces the reply for input no plugin accepted.
type Responder interface {
	Respond(ctx context.Context, input string) (string, error)
	Available() bool
}

// PlaceholderResponder echoes the input back until a model integration exists.
// The zero value is not initialised and says so.
type PlaceholderResponder struct {
	ready bool
}

var _ Responder = (*PlaceholderResponder)(nil)

func NewPlaceholderResponder() *PlaceholderResponder {
	return &PlaceholderResponder{ready: true}
}

func (r *PlaceholderResponder) Respond(ctx context.Context, input string) (string, error) {
	if !r.Available() {
		return MsgNotInitialized, nil
	}
	return fmt.Sprintf(MsgPlaceholderReply, input), nil
}

func (r *PlaceholderResponder) Available() bool {
	return r != nil && r.ready
}
