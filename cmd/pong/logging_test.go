package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolateLogging runs the test in a scratch directory and restores the default logger
func isolateLogging(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	isolateLogging(t)

	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	slog.Info("should go nowhere")

	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	isolateLogging(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logPath := filepath.Join(logDir, logFileName)

	slog.Info("point scored", "side", "left")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "point scored") || !strings.Contains(string(data), "side=left") {
		t.Errorf("Expected structured entry in log file, got %q", data)
	}
	if !strings.Contains(string(data), "logging started") {
		t.Error("Expected debug-level entries to be written")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	isolateLogging(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)

	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	rotated, err := filepath.Glob(filepath.Join(logDir, "pong-*.log"))
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(rotated) != 1 {
		t.Fatalf("Expected one rotated log, found %v", rotated)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected a fresh log file, size is %d", info.Size())
	}
}

func TestDebugEnabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("PONG_DEBUG", tt.value)
			if got := debugEnabled(); got != tt.want {
				t.Errorf("PONG_DEBUG=%q: expected %v, got %v", tt.value, tt.want, got)
			}
		})
	}
}
