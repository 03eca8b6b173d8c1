package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"personal-assistant/internal/model"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "logger:\n  level: error\n  file: " + filepath.Join(t.TempDir(), "assistant.log") + "\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRunAsk(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--config", writeConfig(t), "ask", "add", "task", "buy", "bread"}, strings.NewReader(""), &stdout, &stderr)

	if code != 0 {
		t.Fatalf("expected exit 0, got %d (%s)", code, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != "✅ Added task: buy bread (id 1)" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestRunChat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	in := strings.NewReader("hello\nquit\n")
	code := run(context.Background(), []string{"--config", writeConfig(t), "--voice"}, in, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("expected exit 0, got %d (%s)", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"Personal Assistant", "Voice mode requested", "I understand you said: 'hello'", "Goodbye"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"missing config file", []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, 1},
		{"unknown command", []string{"--config", writeConfig(t), "dance"}, 2},
		{"ask without question", []string{"--config", writeConfig(t), "ask"}, 2},
		{"bad flag", []string{"--nope"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(context.Background(), tt.args, strings.NewReader(""), &stdout, &stderr); code != tt.code {
				t.Errorf("expected exit %d, got %d (%s)", tt.code, code, stderr.String())
			}
		})
	}
}

func TestLocalScope(t *testing.T) {
	if sc := localScope(false); sc.Channel != model.ChannelCLI || sc.SessionID == "" {
		t.Errorf("unexpected text scope %+v", sc)
	}
	if sc := localScope(true); sc.Channel != model.ChannelVoice {
		t.Errorf("expected voice channel, got %q", sc.Channel)
	}
}
