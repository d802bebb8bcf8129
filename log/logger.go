// Package log exposes the pluggable, leveled logger used by the queue packages. Nothing is logged unless the
// application provides a logger using 'SetLogger'.
package log

import "fmt"

// Level indicates the verbosity of a log statement.
type Level uint8

const (
	// LevelTrace is used for per-item events, for example an item being refused admission to a queue.
	LevelTrace Level = iota

	// LevelDebug is used for bulk structural changes such as pruning or compaction.
	LevelDebug

	// LevelInfo includes informational messages which highlight coarse-grained progress.
	LevelInfo

	// LevelWarning includes expected but potentially interesting events, such as a search hitting its limit.
	LevelWarning

	// LevelError includes error events which may still allow the caller to continue.
	LevelError

	// LevelPanic is reserved for the most severe of cases, logging at this level will panic.
	LevelPanic
)

// String returns the four character prefix used when printing a log statement at this level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRAC"
	case LevelDebug:
		return "DEBU"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERRO"
	case LevelPanic:
		return "PNIC"
	}

	return "UNKN"
}

// Logger allows applications to provide custom logger implementations.
type Logger interface {
	Log(level Level, format string, args ...any)
}

// logger is used by every package in this module, it's nil (and therefore silent) by default.
var logger Logger

// SetLogger sets the logger used by the queue packages, passing nil disables logging.
func SetLogger(l Logger) {
	logger = l
}

// Logf allows raw access to the underlying logger, most use cases should be through the functions below.
func Logf(level Level, format string, args ...any) {
	if logger == nil {
		return
	}

	logger.Log(level, format, args...)
}

// Tracef logs the provided information at the trace level.
func Tracef(format string, args ...any) {
	Logf(LevelTrace, format, args...)
}

// Debugf logs the provided information at the debug level.
func Debugf(format string, args ...any) {
	Logf(LevelDebug, format, args...)
}

// Infof logs the provided information at the info level.
func Infof(format string, args ...any) {
	Logf(LevelInfo, format, args...)
}

// Warnf logs the provided information at the warning level.
func Warnf(format string, args ...any) {
	Logf(LevelWarning, format, args...)
}

// Errorf logs the provided information at the error level.
func Errorf(format string, args ...any) {
	Logf(LevelError, format, args...)
}

// Panicf logs the provided information at the panic level, and then panics.
func Panicf(format string, args ...any) {
	Logf(LevelPanic, format, args...)
	panic(fmt.Sprintf(format, args...))
}
