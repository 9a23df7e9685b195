package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"":        log.InfoLevel,
		"loud":    log.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseFormatter(t *testing.T) {
	cases := map[string]log.Formatter{
		"json":   log.JSONFormatter,
		"logfmt": log.LogfmtFormatter,
		"text":   log.TextFormatter,
		"xml":    log.TextFormatter,
	}
	for in, want := range cases {
		if got := ParseFormatter(in); got != want {
			t.Fatalf("ParseFormatter(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "warn", Format: "logfmt"})
	logger.Info("hidden")
	logger.Warn("shown", "command", "list")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "command=list") {
		t.Fatalf("expected warn line with fields, got %q", out)
	}
}

func TestOpenWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "planner.log")
	logger, closer, err := Open(Options{Path: path})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	logger.Info("started")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "started") {
		t.Fatalf("expected log line, got %q", data)
	}
}

func TestOpenEmptyPathDiscards(t *testing.T) {
	logger, closer, err := Open(Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	logger.Error("dropped")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
