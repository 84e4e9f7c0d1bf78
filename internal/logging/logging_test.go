package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" Error ": slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q): want %v, got %v", in, want, got)
		}
	}
}

func TestNew_ErrorIncludesStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "INFO")
	logger.Error("boom", "key", "value")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if rec["msg"] != "boom" {
		t.Errorf("expected msg=boom, got %v", rec["msg"])
	}
	if _, ok := rec["stacktrace"]; !ok {
		t.Error("expected stacktrace attribute on ERROR record")
	}
}

func TestNew_InfoHasNoStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "DEBUG")
	logger.Info("hello")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if _, ok := rec["stacktrace"]; ok {
		t.Error("INFO record should not carry a stacktrace")
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "WARN")
	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected INFO to be filtered at WARN level, got %s", buf.String())
	}
}
