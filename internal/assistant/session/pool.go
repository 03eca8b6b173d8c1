package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/model"
	"personal-assistant/internal/plugin"
)

// Acquire returns the assistant for id. An empty id creates a new session;
// a non-empty one must name a live session, otherwise ErrSessionNotFound is
// returned so callers can tell expired state from a fresh start. The
// returned id is the one the caller should keep using.
func (p *Pool) Acquire(ctx context.Context, id, userID string) (*assistant.Assistant, string, error) {
	if id == "" {
		return p.create(ctx, userID)
	}

	key, err := parseID(id)
	if err != nil {
		return nil, "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	a, ok := p.cache.Get(key)
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrSessionNotFound, key)
	}
	// Re-adding refreshes the idle TTL.
	p.cache.Add(key, a)
	return a, key, nil
}

// Lookup returns a live session without creating one or refreshing its TTL.
func (p *Pool) Lookup(id string) (*assistant.Assistant, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	a, ok := p.cache.Peek(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, key)
	}
	return a, nil
}

// Remove ends a session.
func (p *Pool) Remove(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	if !p.cache.Remove(key) {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, key)
	}
	p.l.Infof(ctx, "%s: session %s ended (active=%d)", LogPrefixRemove, key, p.cache.Len())
	return nil
}

// Describe returns the capabilities a new session would have. Nothing is
// cached.
func (p *Pool) Describe() ([]plugin.Descriptor, error) {
	if p.factory == nil {
		return nil, ErrNoFactory
	}
	a, err := p.factory(model.Scope{Channel: p.channel})
	if err != nil {
		return nil, err
	}
	return a.Capabilities(), nil
}

func (p *Pool) Len() int {
	return p.cache.Len()
}

func (p *Pool) create(ctx context.Context, userID string) (*assistant.Assistant, string, error) {
	if p.factory == nil {
		return nil, "", ErrNoFactory
	}

	id := uuid.NewString()
	a, err := p.factory(model.Scope{SessionID: id, UserID: userID, Channel: p.channel})
	if err != nil {
		return nil, "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache.Add(id, a)
	p.l.Infof(ctx, "%s: new session %s (active=%d)", LogPrefixAcquire, id, p.cache.Len())
	return a, id, nil
}

func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSessionID, err)
	}
	return parsed.String(), nil
}
