package log

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := GetRequestID(ctx); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}

	ctx = SetRequestID(ctx, "req-1")
	if got := GetRequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
}

func TestInitWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assistant.log")

	l := Init(ZapConfig{
		Level:       "debug",
		Mode:        ModeProduction,
		Encoding:    EncodingJSON,
		OutputPaths: []string{path},
	})

	ctx := SetRequestID(context.Background(), "abc-123")
	l.Infof(ctx, "handled %d inputs", 3)
	l.Debug(ctx, "debug line")

	if zl, ok := l.(*zapLogger); ok {
		_ = zl.sugar.Sync()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "handled 3 inputs") {
		t.Errorf("expected message in log output, got %s", out)
	}
	if !strings.Contains(out, `"request_id":"abc-123"`) {
		t.Errorf("expected request_id field, got %s", out)
	}
	if !strings.Contains(out, "debug line") {
		t.Errorf("expected debug line at debug level, got %s", out)
	}
}

func TestInitUnknownLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assistant.log")

	l := Init(ZapConfig{Level: "loud", Encoding: EncodingJSON, OutputPaths: []string{path}})
	l.Debug(context.Background(), "hidden")
	l.Warn(context.Background(), "shown")
	if zl, ok := l.(*zapLogger); ok {
		_ = zl.sugar.Sync()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn message should be written")
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Info(context.Background(), "nothing")
	l.Errorf(context.Background(), "nothing %d", 1)
}
