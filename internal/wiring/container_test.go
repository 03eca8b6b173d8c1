package wiring

import (
	"context"
	"errors"
	"testing"
	"time"

	"personal-assistant/config"
	"personal-assistant/internal/model"
	"personal-assistant/internal/plugin"
	"personal-assistant/internal/plugin/task"
	"personal-assistant/pkg/log"
)

type namedPlugin struct{ name string }

func (p namedPlugin) Descriptor() plugin.Descriptor { return plugin.Descriptor{Name: p.name} }
func (p namedPlugin) CanHandle(string) bool         { return false }
func (p namedPlugin) Execute(context.Context, string, plugin.ExecContext) (string, error) {
	return "", nil
}

func named(name string) PluginBuilder {
	return func(log.Logger, config.PluginConfig) plugin.Plugin { return namedPlugin{name} }
}

func testConfig() *config.Config {
	return &config.Config{
		HTTPServer: config.HTTPServerConfig{Port: 8501, Mode: "test"},
		Assistant: config.AssistantConfig{
			Name:         "Test Assistant",
			HistoryLimit: 4,
			MaxSessions:  10,
			SessionTTL:   time.Minute,
		},
		Plugins: map[string]config.PluginConfig{},
	}
}

func TestNewRegistry(t *testing.T) {
	t.Run("task plugin enabled by default", func(t *testing.T) {
		reg, err := New(testConfig(), nil).NewRegistry()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if names := reg.Names(); len(names) != 1 || names[0] != task.PluginName {
			t.Fatalf("unexpected plugins %v", names)
		}
	})

	t.Run("disabled plugin is skipped", func(t *testing.T) {
		cfg := testConfig()
		cfg.Plugins[task.PluginName] = config.PluginConfig{Enabled: false}

		reg, err := New(cfg, nil).NewRegistry()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reg.Len() != 0 {
			t.Errorf("expected no plugins, got %v", reg.Names())
		}
	})

	t.Run("extra plugins keep order", func(t *testing.T) {
		reg, err := New(testConfig(), nil).
			WithPlugin("weather", named("weather")).
			WithPlugin("notes", named("notes")).
			NewRegistry()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{task.PluginName, "weather", "notes"}
		got := reg.Names()
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("names[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("duplicate plugin is a configuration error", func(t *testing.T) {
		_, err := New(testConfig(), nil).WithPlugin("task", named("task")).NewRegistry()
		if !errors.Is(err, model.ErrConfiguration) {
			t.Fatalf("expected configuration error, got %v", err)
		}
	})
}

func TestNewAssistant(t *testing.T) {
	c := New(testConfig(), nil)
	sc := model.Scope{SessionID: "cli", Channel: model.ChannelCLI}

	a, err := c.NewAssistant(sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := a.Status()
	if st.Name != "Test Assistant" || st.HistoryLimit != 4 || st.PluginsLoaded != 1 {
		t.Errorf("unexpected status %+v", st)
	}
	if a.Scope() != sc {
		t.Errorf("unexpected scope %+v", a.Scope())
	}

	// Assistants do not share plugin state.
	b, _ := c.NewAssistant(sc)
	if _, err := a.Handle(context.Background(), "add task only in a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reply, _ := b.Handle(context.Background(), "list tasks")
	if reply.Text != task.MsgNoTasks {
		t.Errorf("expected isolated task list, got %q", reply.Text)
	}
}

func TestNewHTTPServer(t *testing.T) {
	if _, err := New(testConfig(), nil).NewHTTPServer(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
