package logger

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		want  slog.Level
	}{
		{name: "debug level", level: LevelDebug, want: slog.LevelDebug},
		{name: "info level", level: LevelInfo, want: slog.LevelInfo},
		{name: "warn level", level: LevelWarn, want: slog.LevelWarn},
		{name: "error level", level: LevelError, want: slog.LevelError},
		{name: "unknown level", level: Level("verbose"), want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(Config{Level: tt.level, Output: "discard"})
			if logger.Logger == nil {
				t.Fatal("Expected logger to be created")
			}

			ctx := context.Background()
			if !logger.Enabled(ctx, tt.want) {
				t.Errorf("Expected level %v to be enabled", tt.want)
			}
			if tt.want > slog.LevelDebug && logger.Enabled(ctx, tt.want-1) {
				t.Errorf("Expected level below %v to be disabled", tt.want)
			}
		})
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	original := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = original

	output, _ := io.ReadAll(r)
	return string(output)
}

func TestJSONFormat(t *testing.T) {
	output := captureStdout(t, func() {
		logger := New(Config{Level: LevelInfo, Format: FormatJSON, Output: "stdout"})
		logger.Info("test message", "key", "value")
	})

	var logEntry map[string]interface{}
	if err := json.Unmarshal([]byte(output), &logEntry); err != nil {
		t.Fatalf("Expected valid JSON output, got error: %v", err)
	}

	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg to be 'test message', got %v", logEntry["msg"])
	}

	if logEntry["key"] != "value" {
		t.Errorf("Expected key to be 'value', got %v", logEntry["key"])
	}
}

func TestTextFormat(t *testing.T) {
	output := captureStdout(t, func() {
		logger := New(Config{Level: LevelInfo, Format: FormatText, Output: "stdout"})
		logger.Info("test message", "key", "value")
	})

	if !strings.Contains(output, "test message") {
		t.Errorf("Expected output to contain 'test message', got %s", output)
	}

	if !strings.Contains(output, "key=value") {
		t.Errorf("Expected output to contain 'key=value', got %s", output)
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.log")

	logger := New(Config{Level: LevelWarn, Output: path})
	logger.Info("hidden")
	logger.Warn("store is blank", "path", "expenses.json")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if strings.Contains(string(content), "hidden") {
		t.Errorf("Expected info message to be filtered, got %s", content)
	}
	if !strings.Contains(string(content), "store is blank") {
		t.Errorf("Expected warn message in log file, got %s", content)
	}
}
