package logging

import (
	"bytes"
	"strings"
	"testing"
)

func newBufferLogger(level LogLevel) (*ConsoleLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(ConsoleLoggerConfig{
		Writer: &buf,
		Level:  level,
	})
	return logger, &buf
}

func TestConsoleLogger_FiltersBelowLevel(t *testing.T) {
	logger, buf := newBufferLogger(ERROR)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	if strings.Contains(output, "info message") || strings.Contains(output, "warn message") {
		t.Errorf("sub-error entries reached the console: %q", output)
	}
	if !strings.Contains(output, "error message") {
		t.Errorf("error entry missing: %q", output)
	}
}

func TestConsoleLogger_Fields(t *testing.T) {
	logger, buf := newBufferLogger(INFO)

	logger.Info("library mirrored", F("library", "Documents"), F("copied", 4))

	output := buf.String()
	if !strings.Contains(output, "library=Documents") {
		t.Errorf("missing field: %q", output)
	}
	if !strings.Contains(output, "copied=4") {
		t.Errorf("missing field: %q", output)
	}
}

func TestConsoleLogger_RedactsBearerToken(t *testing.T) {
	logger, buf := newBufferLogger(INFO)

	logger.Info("request failed", F("header", "Bearer eyJhbGciOiJSUzI1NiJ9.payload.sig"))

	output := buf.String()
	if strings.Contains(output, "eyJhbGciOiJSUzI1NiJ9") {
		t.Errorf("token leaked to console: %q", output)
	}
	if !strings.Contains(output, "Bearer [REDACTED]") {
		t.Errorf("redaction marker missing: %q", output)
	}
}

func TestConsoleLogger_TraceIDPrefix(t *testing.T) {
	logger, buf := newBufferLogger(INFO)

	logger.WithTraceID("0123456789abcdef").Info("traced message")

	if !strings.Contains(buf.String(), "[01234567]") {
		t.Errorf("expected shortened trace prefix, got %q", buf.String())
	}
}

func TestMultiLogger_PerTargetLevels(t *testing.T) {
	verbose, verboseBuf := newBufferLogger(DEBUG)
	quiet, quietBuf := newBufferLogger(ERROR)
	logger := NewMultiLogger(verbose, quiet)

	logger.Info("progress update")
	logger.Error("something broke")

	if !strings.Contains(verboseBuf.String(), "progress update") {
		t.Error("verbose target missed info entry")
	}
	if strings.Contains(quietBuf.String(), "progress update") {
		t.Error("quiet target should filter info entries")
	}
	if !strings.Contains(quietBuf.String(), "something broke") {
		t.Error("quiet target missed error entry")
	}
}
