package types

// Logger defines methods for structured logging.
//
// Compatible with slog-style and zap.SugaredLogger-style structured loggers.
// All methods accept alternating key-value pairs for structured fields.
//
// Partitioners log configuration and reset events at Debug level only; the
// GetNext hot path is never logged.
type Logger interface {
	// Debug logs a message at DebugLevel with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at WarnLevel with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at ErrorLevel with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// Fatal logs a message at ErrorLevel and calls os.Exit(1).
	Fatal(msg string, keysAndValues ...any)
}
