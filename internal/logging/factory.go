package logging

// LogConfig describes the logging setup for a run
type LogConfig struct {
	// Level is the minimum level written to the log file
	Level LogLevel

	// OutputFile is the log file path; empty disables file logging
	OutputFile string

	// EnableConsole turns on console output. Unless Verbose is set, only
	// error-level entries reach the console; the file gets everything at
	// or above Level.
	EnableConsole bool

	// Verbose lowers the console filter to Level instead of ERROR
	Verbose bool

	// EnableColor enables ANSI colors on the console
	EnableColor bool

	// EnableTimestamp prefixes console lines with a timestamp
	EnableTimestamp bool
}

// DefaultLogConfig returns the standard configuration
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:           INFO,
		EnableConsole:   true,
		EnableColor:     true,
		EnableTimestamp: true,
	}
}

// NewLogger builds a logger from the configuration. With both a file and
// console enabled it returns a MultiLogger; with neither it returns a
// NoOpLogger.
func NewLogger(config LogConfig) (Logger, error) {
	var loggers []Logger

	if config.OutputFile != "" {
		fileLogger, err := NewFileLogger(FileLoggerConfig{
			FilePath: config.OutputFile,
			Level:    config.Level,
		})
		if err != nil {
			return nil, err
		}
		loggers = append(loggers, fileLogger)
	}

	if config.EnableConsole {
		consoleLevel := ERROR
		if config.Verbose {
			consoleLevel = config.Level
		}
		loggers = append(loggers, NewConsoleLogger(ConsoleLoggerConfig{
			Level:            consoleLevel,
			ColorEnabled:     config.EnableColor,
			TimestampEnabled: config.EnableTimestamp,
		}))
	}

	switch len(loggers) {
	case 0:
		return NewNoOpLogger(), nil
	case 1:
		return loggers[0], nil
	default:
		return NewMultiLogger(loggers...), nil
	}
}
