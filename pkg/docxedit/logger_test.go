package docxedit

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name           string
		level          LogLevel
		expectedOutput []string
		notExpected    []string
	}{
		{
			name:  "debug level shows all messages",
			level: LogDebug,
			expectedOutput: []string{
				`"level":"debug"`, "debug message",
				`"level":"info"`, "info message",
				`"level":"warn"`, "warn message",
				`"level":"error"`, "error message",
			},
		},
		{
			name:  "info level hides debug messages",
			level: LogInfo,
			expectedOutput: []string{
				"info message",
				"warn message",
				"error message",
			},
			notExpected: []string{
				"debug message",
			},
		},
		{
			name:  "error level shows only errors",
			level: LogError,
			expectedOutput: []string{
				"error message",
			},
			notExpected: []string{
				"debug message",
				"info message",
				"warn message",
			},
		},
		{
			name:  "off hides everything",
			level: LogOff,
			notExpected: []string{
				"message",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.level)

			logger.Debug("debug message")
			logger.Info("info %s", "message")
			logger.Warn("warn message")
			logger.Error("error message")

			output := buf.String()
			for _, expected := range tt.expectedOutput {
				if !strings.Contains(output, expected) {
					t.Errorf("expected output to contain %q, got: %s", expected, output)
				}
			}
			for _, notExpected := range tt.notExpected {
				if strings.Contains(output, notExpected) {
					t.Errorf("expected output not to contain %q, got: %s", notExpected, output)
				}
			}
		})
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogDebug).
		WithField("component", "merge").
		WithFields(Fields{"runs": 3})

	logger.Info("merged")

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("output is not a JSON line: %v (%s)", err, buf.String())
	}
	if entry["message"] != "merged" {
		t.Errorf("message = %v, want merged", entry["message"])
	}
	if entry["component"] != "merge" {
		t.Errorf("component = %v, want merge", entry["component"])
	}
	if entry["runs"] != float64(3) {
		t.Errorf("runs = %v, want 3", entry["runs"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected a timestamp")
	}
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogError)

	if logger.IsDebugMode() {
		t.Error("IsDebugMode() = true at error level")
	}
	logger.Info("hidden")

	logger.SetLevel(LogDebug)
	if !logger.IsDebugMode() {
		t.Error("IsDebugMode() = false after SetLevel(LogDebug)")
	}
	logger.Info("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("message logged below the level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("message missing after raising the level")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LogDebug,
		"info":    LogInfo,
		"warn":    LogWarn,
		"error":   LogError,
		"off":     LogOff,
		"unknown": LogInfo,
	}
	for input, want := range tests {
		if got := parseLogLevel(input); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestGlobalLogger(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	var buf bytes.Buffer
	SetLogger(NewLogger(&buf, LogWarn))

	Info("not shown")
	Warn("global %d", 1)
	WithField("path", "a.docx").Error("failed")

	output := buf.String()
	if strings.Contains(output, "not shown") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(output, "global 1") || !strings.Contains(output, `"path":"a.docx"`) {
		t.Errorf("unexpected output: %s", output)
	}
}

func TestDocumentFollowsGlobalLogger(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	doc := New(`<w:r><w:rPr><w:lang w:val="en-US"/></w:rPr><w:t>x</w:t></w:r>`)

	var buf bytes.Buffer
	SetLogger(NewLogger(&buf, LogDebug))

	if err := doc.RemoveNoise("language"); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	if !strings.Contains(output, "Removed noise") {
		t.Errorf("document logged to a stale logger: %q", output)
	}
	if !strings.Contains(output, `"component":"document"`) {
		t.Errorf("missing component field: %s", output)
	}
}
