package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func readEntries(t *testing.T, path string) []LogEntry {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open log file: %v", err)
	}
	defer file.Close()

	var entries []LogEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry LogEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("invalid JSON line %q: %v", scanner.Text(), err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestFileLogger_WritesJSONEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := NewFileLogger(FileLoggerConfig{FilePath: logPath, Level: DEBUG})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	logger.Info("mirror started", F("libraries", 3))
	logger.Close()

	entries := readEntries(t, logPath)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	entry := entries[0]
	if entry.Level != "INFO" {
		t.Errorf("Level = %q, want INFO", entry.Level)
	}
	if entry.Message != "mirror started" {
		t.Errorf("Message = %q", entry.Message)
	}
	if entry.Fields["libraries"] != float64(3) {
		t.Errorf("Fields[libraries] = %v", entry.Fields["libraries"])
	}
	if entry.Timestamp.IsZero() {
		t.Error("Timestamp is zero")
	}
}

func TestFileLogger_FiltersBelowLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := NewFileLogger(FileLoggerConfig{FilePath: logPath, Level: WARN})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")
	logger.Close()

	entries := readEntries(t, logPath)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Level != "WARN" || entries[1].Level != "ERROR" {
		t.Errorf("levels = %q, %q", entries[0].Level, entries[1].Level)
	}
}

func TestFileLogger_WithTraceID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := NewFileLogger(FileLoggerConfig{FilePath: logPath, Level: INFO})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	logger.WithTraceID("trace-123").Info("with trace")
	logger.Info("without trace")
	logger.Close()

	entries := readEntries(t, logPath)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].TraceID != "trace-123" {
		t.Errorf("TraceID = %q, want trace-123", entries[0].TraceID)
	}
	if entries[1].TraceID != "" {
		t.Errorf("TraceID = %q, want empty", entries[1].TraceID)
	}
}

func TestFileLogger_AppendsAcrossOpens(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	for i := 0; i < 2; i++ {
		logger, err := NewFileLogger(FileLoggerConfig{FilePath: logPath, Level: INFO})
		if err != nil {
			t.Fatalf("NewFileLogger() error = %v", err)
		}
		logger.Info("run entry")
		logger.Close()
	}

	entries := readEntries(t, logPath)
	if len(entries) != 2 {
		t.Errorf("entries = %d, want 2 after reopening", len(entries))
	}
}
