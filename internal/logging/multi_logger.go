package logging

import "context"

// MultiLogger fans log entries out to several loggers. Each target applies
// its own level filter, which is how error-level entries reach the console
// while the log file keeps the full record.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a logger that forwards to all given loggers
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// Debug logs a debug-level message to all targets
func (l *MultiLogger) Debug(msg string, fields ...Field) {
	for _, target := range l.loggers {
		target.Debug(msg, fields...)
	}
}

// Info logs an info-level message to all targets
func (l *MultiLogger) Info(msg string, fields ...Field) {
	for _, target := range l.loggers {
		target.Info(msg, fields...)
	}
}

// Warn logs a warning-level message to all targets
func (l *MultiLogger) Warn(msg string, fields ...Field) {
	for _, target := range l.loggers {
		target.Warn(msg, fields...)
	}
}

// Error logs an error-level message to all targets
func (l *MultiLogger) Error(msg string, fields ...Field) {
	for _, target := range l.loggers {
		target.Error(msg, fields...)
	}
}

// WithTraceID returns a MultiLogger whose targets all carry the trace ID
func (l *MultiLogger) WithTraceID(traceID string) Logger {
	traced := make([]Logger, len(l.loggers))
	for i, target := range l.loggers {
		traced[i] = target.WithTraceID(traceID)
	}
	return &MultiLogger{loggers: traced}
}

// WithContext returns a logger carrying the context's trace ID, if any
func (l *MultiLogger) WithContext(ctx context.Context) Logger {
	traceID := TraceIDFromContext(ctx)
	if traceID == "" {
		return l
	}
	return l.WithTraceID(traceID)
}

// SetLevel sets the minimum level on every target
func (l *MultiLogger) SetLevel(level LogLevel) {
	for _, target := range l.loggers {
		target.SetLevel(level)
	}
}

// Close closes all targets, returning the first error encountered
func (l *MultiLogger) Close() error {
	var firstErr error
	for _, target := range l.loggers {
		if err := target.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
