package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trace.log")
	Configure(path)
	defer Configure("")
	SetTraceEnabled(true)
	defer SetTraceEnabled(false)

	Trace("page.section", map[string]interface{}{"section": "about"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("decode trace line %q: %v", data, err)
	}
	if entry.Event != "page.section" || entry.Payload["section"] != "about" {
		t.Fatalf("unexpected entry %#v", entry)
	}
}

func TestTraceSilentWhenDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	Configure(path)
	defer Configure("")
	SetTraceEnabled(false)

	Trace("page.section", nil)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no trace file, stat err = %v", err)
	}
}

func TestErrorAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	Configure(path)
	defer Configure("")

	Error(errors.New("first"))
	Errorf("second %d", 2)
	Error(nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "first") || !strings.Contains(text, "second 2") {
		t.Fatalf("unexpected log contents %q", text)
	}
	if lines := strings.Count(strings.TrimSpace(text), "\n") + 1; lines != 2 {
		t.Fatalf("expected 2 lines, got %d", lines)
	}
}

func TestConfigureEmptyFallsBack(t *testing.T) {
	Configure("  ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}
