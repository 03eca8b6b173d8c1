package plugin_test

import (
	"context"
	"errors"
	"testing"

	"personal-assistant/internal/model"
	"personal-assistant/internal/plugin"
)

type fakePlugin struct {
	name      string
	accept    bool
	reply     string
	err       error
	panicOn   string
	calls     int
	lastInput string
	commands  []string

	describePanics bool
}

func (f *fakePlugin) Descriptor() plugin.Descriptor {
	if f.describePanics {
		panic("no descriptor")
	}
	return plugin.Descriptor{Name: f.name, Description: f.name + " plugin", Version: "1.0.0"}
}

func (f *fakePlugin) CanHandle(input string) bool {
	if f.panicOn == plugin.OpCanHandle {
		panic("boom")
	}
	return f.accept
}

func (f *fakePlugin) Execute(ctx context.Context, input string, ec plugin.ExecContext) (string, error) {
	f.calls++
	f.lastInput = ec.Input
	if f.panicOn == plugin.OpExecute {
		panic("boom")
	}
	return f.reply, f.err
}

type commanderPlugin struct {
	fakePlugin
}

func (c *commanderPlugin) Commands() []string { return c.commands }

func TestRegister(t *testing.T) {
	t.Run("duplicate name is a configuration error", func(t *testing.T) {
		r := plugin.NewRegistry(nil)
		if err := r.Register(&fakePlugin{name: "task"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := r.Register(&fakePlugin{name: " Task "})
		if err == nil {
			t.Fatal("expected duplicate registration to fail")
		}
		if !errors.Is(err, model.ErrConfiguration) {
			t.Errorf("expected configuration error, got %v", err)
		}
		if !errors.Is(err, model.ErrPlugin) {
			t.Errorf("expected plugin error, got %v", err)
		}
		if !errors.Is(err, plugin.ErrDuplicatePlugin) {
			t.Errorf("expected ErrDuplicatePlugin, got %v", err)
		}
		if r.Len() != 1 {
			t.Errorf("expected plugin registered once, got %d", r.Len())
		}
	})

	t.Run("empty name", func(t *testing.T) {
		r := plugin.NewRegistry(nil)
		err := r.Register(&fakePlugin{name: "   "})
		if !errors.Is(err, plugin.ErrEmptyName) {
			t.Fatalf("expected ErrEmptyName, got %v", err)
		}
		if r.Len() != 0 {
			t.Errorf("expected empty registry, got %d", r.Len())
		}
	})

	t.Run("nil plugin", func(t *testing.T) {
		r := plugin.NewRegistry(nil)
		if err := r.Register(nil); !errors.Is(err, plugin.ErrNilPlugin) {
			t.Fatalf("expected ErrNilPlugin, got %v", err)
		}
	})

	t.Run("panicking descriptor", func(t *testing.T) {
		r := plugin.NewRegistry(nil)
		err := r.Register(&fakePlugin{name: "a", describePanics: true})
		if !errors.Is(err, plugin.ErrPanic) {
			t.Fatalf("expected ErrPanic, got %v", err)
		}
		if r.Len() != 0 {
			t.Errorf("expected empty registry, got %d", r.Len())
		}
	})
}

func TestRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("first capable plugin wins", func(t *testing.T) {
		r := plugin.NewRegistry(nil)
		a := &fakePlugin{name: "a", accept: true, reply: "from a"}
		b := &fakePlugin{name: "b", accept: true, reply: "from b"}
		_ = r.Register(a)
		_ = r.Register(b)

		for i := 0; i < 3; i++ {
			res := r.Route(ctx, "hello", plugin.ExecContext{Input: "hello"})
			if res.Plugin != "a" || res.Response != "from a" || !res.Handled {
				t.Fatalf("unexpected result %+v", res)
			}
		}
		if a.calls != 3 || b.calls != 0 {
			t.Errorf("expected a=3 b=0 calls, got a=%d b=%d", a.calls, b.calls)
		}
		if a.lastInput != "hello" {
			t.Errorf("expected exec context input, got %q", a.lastInput)
		}
	})

	t.Run("skips plugins that decline", func(t *testing.T) {
		r := plugin.NewRegistry(nil)
		_ = r.Register(&fakePlugin{name: "a"})
		_ = r.Register(&fakePlugin{name: "b", accept: true, reply: "from b"})

		res := r.Route(ctx, "x", plugin.ExecContext{})
		if res.Plugin != "b" || res.Response != "from b" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("no capable plugin", func(t *testing.T) {
		r := plugin.NewRegistry(nil)
		_ = r.Register(&fakePlugin{name: "a"})

		res := r.Route(ctx, "x", plugin.ExecContext{})
		if res.Handled || res.Err != nil || res.Plugin != "" {
			t.Fatalf("expected unhandled result, got %+v", res)
		}
	})

	t.Run("execute error does not fall through", func(t *testing.T) {
		r := plugin.NewRegistry(nil)
		cause := errors.New("disk on fire")
		a := &fakePlugin{name: "a", accept: true, err: cause}
		b := &fakePlugin{name: "b", accept: true, reply: "from b"}
		_ = r.Register(a)
		_ = r.Register(b)

		res := r.Route(ctx, "x", plugin.ExecContext{})
		if !res.Handled || res.Plugin != "a" {
			t.Fatalf("unexpected result %+v", res)
		}
		if !errors.Is(res.Err, cause) || !errors.Is(res.Err, model.ErrPlugin) {
			t.Fatalf("expected wrapped plugin error, got %v", res.Err)
		}
		var perr *plugin.Error
		if !errors.As(res.Err, &perr) || perr.Op != plugin.OpExecute {
			t.Fatalf("expected execute op, got %v", res.Err)
		}
		if b.calls != 0 {
			t.Errorf("expected b not to be called, got %d", b.calls)
		}
	})

	t.Run("panics are recovered", func(t *testing.T) {
		for _, op := range []string{plugin.OpCanHandle, plugin.OpExecute} {
			t.Run(op, func(t *testing.T) {
				r := plugin.NewRegistry(nil)
				_ = r.Register(&fakePlugin{name: "a", accept: true, panicOn: op})
				b := &fakePlugin{name: "b", accept: true}
				_ = r.Register(b)

				res := r.Route(ctx, "x", plugin.ExecContext{})
				if !errors.Is(res.Err, plugin.ErrPanic) {
					t.Fatalf("expected ErrPanic, got %v", res.Err)
				}
				var perr *plugin.Error
				if !errors.As(res.Err, &perr) || perr.Op != op || perr.Plugin != "a" {
					t.Fatalf("unexpected error %v", res.Err)
				}
				if b.calls != 0 {
					t.Errorf("expected b not to be called")
				}
			})
		}
	})
}

func TestRouteUsesRegisteredName(t *testing.T) {
	ctx := context.Background()
	r := plugin.NewRegistry(nil)
	a := &fakePlugin{name: "a", accept: true, reply: "from a"}
	if err := r.Register(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.describePanics = true

	res := r.Route(ctx, "x", plugin.ExecContext{})
	if res.Plugin != "a" || res.Response != "from a" || res.Err != nil {
		t.Fatalf("unexpected result %+v", res)
	}
	if names := r.Names(); len(names) != 1 || names[0] != "a" {
		t.Errorf("unexpected names %v", names)
	}
	descs := r.Descriptors()
	if len(descs) != 1 || descs[0].Name != "a" {
		t.Errorf("expected fallback descriptor, got %+v", descs)
	}
}

func TestDescriptors(t *testing.T) {
	r := plugin.NewRegistry(nil)
	_ = r.Register(&fakePlugin{name: "zeta"})
	_ = r.Register(&commanderPlugin{fakePlugin{name: "alpha", commands: []string{"do alpha"}}})
	_ = r.Register(&fakePlugin{name: "mid"})

	names := r.Names()
	want := []string{"zeta", "alpha", "mid"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	descs := r.Descriptors()
	if descs[1].Name != "alpha" || len(descs[1].Commands) != 1 || descs[1].Commands[0] != "do alpha" {
		t.Errorf("expected commander commands on descriptor, got %+v", descs[1])
	}
	if len(descs[0].Commands) != 0 {
		t.Errorf("expected no commands for plain plugin, got %v", descs[0].Commands)
	}
}
