// Package log provides a high level logger abstraction used across the
// module's operations and CLI layer.
package log

// LoggerLevel defines level markers for log entries.
type LoggerLevel int

const (
	// UnsetLevel should not be output by logger implementation.
	UnsetLevel = iota - 2
	// DebugLevel marks detailed output, only emitted in unsafe-debug mode.
	DebugLevel
	// InfoLevel is the default log output marker.
	InfoLevel
	// WarnLevel marks a recoverable condition the operator should notice,
	// e.g. proceeding with an empty IKM set.
	WarnLevel
	// ErrorLevel marks an error output.
	ErrorLevel
)

// Factory defines a utility to create new loggers.
type Factory interface {
	// New creates a new logger.
	New() Logger
}

// Logger describes logger feature interface.
type Logger interface {
	Level(lvl LoggerLevel) Logger
	Field(k string, v any) Logger
	Fields(data map[string]any) Logger
	Error(err error) Logger
	Message(msg string)
	Messagef(format string, v ...any)
}
