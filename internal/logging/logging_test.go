package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arendjr/phebe/internal/config"
)

func TestTextToStderr(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := newLogger(config.LogConfig{Level: config.LogInfo, Format: config.LogFormatText}, false, &buf)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("shown", "path", "/people")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug line written at info level")
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "path=/people") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := newLogger(config.LogConfig{Level: config.LogError}, true, &buf)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}

	logger.Debug("details")
	if !strings.Contains(buf.String(), "details") {
		t.Errorf("verbose logger dropped debug line: %q", buf.String())
	}
}

func TestJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "phebe.log")
	logger, closer, err := New(config.LogConfig{
		Level:      config.LogInfo,
		Format:     config.LogFormatJSON,
		File:       path,
		MaxSizeMB:  1,
		MaxBackups: 1,
	}, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Warn("disk", "free", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("log line is not JSON: %q: %v", data, err)
	}
	if entry["msg"] != "disk" || entry["level"] != "WARN" || entry["free"] != float64(3) {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestInvalidSettings(t *testing.T) {
	var buf bytes.Buffer
	if _, _, err := newLogger(config.LogConfig{Level: "loud"}, false, &buf); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, _, err := newLogger(config.LogConfig{Format: "xml"}, false, &buf); err == nil {
		t.Error("expected error for unknown format")
	}
}
