// Package logging exposes the narrow logging contract the editor core
// depends on: log(level, target, message). It wraps zerolog so the core
// never imports a logging backend directly, only this interface.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Level mirrors zerolog's level scale without leaking the zerolog type into
// callers that only want to log, not configure a backend.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) zerolog() zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Warn:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger is the narrow contract core packages accept: a single log method
// keyed by level, target (the emitting component's name), and message. A
// nil *Logger is valid and silently drops everything, so core code can
// always log unconditionally without a nil check at every call site.
type Logger struct {
	zl *zerolog.Logger
}

// New builds a Logger writing to w at the given minimum level. Passing
// os.Stderr and Info matches the teacher's console-logging default; a file
// handle matches its setupFileLogging path.
func New(w io.Writer, minLevel Level) *Logger {
	zl := zerolog.New(w).With().Timestamp().Logger().Level(minLevel.zerolog())
	return &Logger{zl: &zl}
}

// Discard returns a Logger that drops every message.
func Discard() *Logger {
	return New(io.Discard, Error)
}

// Log records message at level, tagged with the emitting target.
func (l *Logger) Log(level Level, target, message string) {
	if l == nil || l.zl == nil {
		return
	}
	l.zl.WithLevel(level.zerolog()).Str("target", target).Msg(message)
}

// Default returns a Logger writing to stderr at Info level, matching the
// teacher's console fallback before file logging is configured.
func Default() *Logger {
	return New(os.Stderr, Info)
}
