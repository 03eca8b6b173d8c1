package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/model"
)

func newFactory(created *[]model.Scope) Factory {
	return func(sc model.Scope) (*assistant.Assistant, error) {
		*created = append(*created, sc)
		return assistant.New(nil, assistant.Options{Scope: sc}), nil
	}
}

func TestAcquire(t *testing.T) {
	ctx := context.Background()

	t.Run("empty id creates a session", func(t *testing.T) {
		var created []model.Scope
		p := New(nil, Config{MaxSessions: 10, TTL: time.Minute}, model.ChannelWeb, newFactory(&created))

		a, id, err := p.Acquire(ctx, "", "127.0.0.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected uuid session id, got %q", id)
		}
		if a.Scope().SessionID != id || a.Scope().Channel != model.ChannelWeb || a.Scope().UserID != "127.0.0.1" {
			t.Errorf("unexpected scope %+v", a.Scope())
		}
		if len(created) != 1 || p.Len() != 1 {
			t.Errorf("expected one session, created=%d len=%d", len(created), p.Len())
		}
	})

	t.Run("known id reuses the session", func(t *testing.T) {
		var created []model.Scope
		p := New(nil, Config{MaxSessions: 10, TTL: time.Minute}, model.ChannelWeb, newFactory(&created))

		first, id, _ := p.Acquire(ctx, "", "")
		second, sameID, err := p.Acquire(ctx, id, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != second || id != sameID {
			t.Error("expected the same assistant for the same id")
		}
		if len(created) != 1 {
			t.Errorf("expected factory to run once, ran %d times", len(created))
		}
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		var created []model.Scope
		p := New(nil, Config{MaxSessions: 10, TTL: time.Minute}, model.ChannelWeb, newFactory(&created))

		a, _, _ := p.Acquire(ctx, "", "")
		b, _, _ := p.Acquire(ctx, "", "")
		if _, err := a.Handle(ctx, "hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Status().HistorySize != 1 || b.Status().HistorySize != 0 {
			t.Errorf("history leaked between sessions: a=%d b=%d", a.Status().HistorySize, b.Status().HistorySize)
		}
	})

	t.Run("unknown id is not recreated", func(t *testing.T) {
		var created []model.Scope
		p := New(nil, Config{MaxSessions: 10, TTL: time.Minute}, model.ChannelWeb, newFactory(&created))

		if _, _, err := p.Acquire(ctx, uuid.NewString(), ""); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
		if len(created) != 0 || p.Len() != 0 {
			t.Errorf("unknown id should not create a session, created=%d len=%d", len(created), p.Len())
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		var created []model.Scope
		p := New(nil, Config{}, model.ChannelWeb, newFactory(&created))

		if _, _, err := p.Acquire(ctx, "not-a-uuid", ""); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
		if len(created) != 0 {
			t.Error("factory should not run for an invalid id")
		}
	})

	t.Run("factory error", func(t *testing.T) {
		boom := errors.New("boom")
		p := New(nil, Config{}, model.ChannelWeb, func(model.Scope) (*assistant.Assistant, error) { return nil, boom })

		if _, _, err := p.Acquire(ctx, "", ""); !errors.Is(err, boom) {
			t.Fatalf("expected factory error, got %v", err)
		}
		if p.Len() != 0 {
			t.Errorf("failed session should not be cached")
		}
	})

	t.Run("nil factory", func(t *testing.T) {
		p := New(nil, Config{}, model.ChannelWeb, nil)
		if _, _, err := p.Acquire(ctx, "", ""); !errors.Is(err, model.ErrConfiguration) {
			t.Fatalf("expected configuration error, got %v", err)
		}
	})
}

func TestPoolEviction(t *testing.T) {
	ctx := context.Background()
	var created []model.Scope
	p := New(nil, Config{MaxSessions: 2, TTL: time.Minute}, model.ChannelWeb, newFactory(&created))

	_, first, _ := p.Acquire(ctx, "", "")
	_, _, _ = p.Acquire(ctx, "", "")
	_, _, _ = p.Acquire(ctx, "", "")

	if p.Len() != 2 {
		t.Fatalf("expected pool capped at 2, got %d", p.Len())
	}
	if _, err := p.Lookup(first); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected the oldest session to be evicted, got %v", err)
	}
	if _, _, err := p.Acquire(ctx, first, ""); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected evicted session to stay gone, got %v", err)
	}
	if len(created) != 3 {
		t.Errorf("expected 3 sessions created, got %d", len(created))
	}
}

func TestLookupAndRemove(t *testing.T) {
	ctx := context.Background()
	var created []model.Scope
	p := New(nil, Config{}, model.ChannelWeb, newFactory(&created))

	if _, err := p.Lookup(uuid.NewString()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := p.Lookup("garbage"); !errors.Is(err, ErrInvalidSessionID) {
		t.Errorf("expected ErrInvalidSessionID, got %v", err)
	}

	_, id, _ := p.Acquire(ctx, "", "")
	if _, err := p.Lookup(id); err != nil {
		t.Fatalf("expected session to be found: %v", err)
	}
	if err := p.Remove(ctx, id); err != nil {
		t.Fatalf("expected session to be removed: %v", err)
	}
	if err := p.Remove(ctx, id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected second remove to fail, got %v", err)
	}
	if p.Len() != 0 || len(created) != 1 {
		t.Errorf("unexpected state len=%d created=%d", p.Len(), len(created))
	}
}

func TestDescribe(t *testing.T) {
	var created []model.Scope
	p := New(nil, Config{}, model.ChannelWeb, newFactory(&created))

	if _, err := p.Describe(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Len() != 0 {
		t.Errorf("describe should not cache a session, got %d", p.Len())
	}
	if len(created) != 1 || created[0].SessionID != "" || created[0].Channel != model.ChannelWeb {
		t.Errorf("unexpected factory calls %+v", created)
	}

	if _, err := New(nil, Config{}, model.ChannelWeb, nil).Describe(); !errors.Is(err, model.ErrConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
}
