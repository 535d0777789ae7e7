package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Logger().Debug("render pass", "width", 4)

	if !strings.Contains(buf.String(), "render pass") {
		t.Errorf("log output %q missing message", buf.String())
	}
}
