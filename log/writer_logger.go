package log

import (
	"fmt"
	"io"
	"os"
	"time"
)

// WriterLogger prints every log statement, prefixed with a timestamp and its level, to the wrapped writer.
type WriterLogger struct {
	w        io.Writer
	minLevel Level
	now      func() time.Time
}

// NewWriterLogger returns a logger which writes statements at, or above, the given level to w.
func NewWriterLogger(w io.Writer, minLevel Level) *WriterLogger {
	return &WriterLogger{w: w, minLevel: minLevel, now: time.Now}
}

// NewStdoutLogger returns a logger which writes statements at, or above, the given level to standard output.
func NewStdoutLogger(minLevel Level) *WriterLogger {
	return NewWriterLogger(os.Stdout, minLevel)
}

// Log implements the 'Logger' interface.
func (l *WriterLogger) Log(level Level, format string, args ...any) {
	if level < l.minLevel {
		return
	}

	fmt.Fprintf(l.w, "%s %s: %s\n", l.now().Format(time.RFC3339Nano), level, fmt.Sprintf(format, args...))
}
