package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	levels []Level
	lines  []string
}

func (r *recordingLogger) Log(level Level, format string, args ...any) {
	r.levels = append(r.levels, level)
	r.lines = append(r.lines, format)
}

func TestLogfNoLogger(t *testing.T) {
	SetLogger(nil)
	require.NotPanics(t, func() { Infof("nobody is listening") })
}

func TestHelpersUseLevels(t *testing.T) {
	rec := &recordingLogger{}

	SetLogger(rec)
	defer SetLogger(nil)

	Tracef("trace")
	Debugf("debug")
	Infof("info")
	Warnf("warn")
	Errorf("error")

	require.Equal(t, []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarning, LevelError}, rec.levels)
	require.Equal(t, []string{"trace", "debug", "info", "warn", "error"}, rec.lines)
}

func TestPanicf(t *testing.T) {
	rec := &recordingLogger{}

	SetLogger(rec)
	defer SetLogger(nil)

	require.PanicsWithValue(t, "bad 42", func() { Panicf("bad %d", 42) })
	require.Equal(t, []Level{LevelPanic}, rec.levels)
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "TRAC", LevelTrace.String())
	require.Equal(t, "PNIC", LevelPanic.String())
	require.Equal(t, "UNKN", Level(42).String())
}

func TestWriterLogger(t *testing.T) {
	var (
		buf    bytes.Buffer
		logger = NewWriterLogger(&buf, LevelDebug)
	)

	logger.now = func() time.Time { return time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC) }

	logger.Log(LevelTrace, "dropped %d", 1)
	logger.Log(LevelWarning, "kept %d", 2)

	require.Equal(t, "2023-01-02T03:04:05Z WARN: kept 2\n", buf.String())
}
