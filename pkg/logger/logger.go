// Package logger provides structured logging on top of zerolog.
package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with printf-style level methods.
type Logger struct {
	logger *zerolog.Logger
}

// New builds a Logger writing JSON to stdout at the given level.
// Unknown levels fall back to info.
func New(level string) *Logger {
	var l zerolog.Level

	switch strings.ToLower(level) {
	case "error":
		l = zerolog.ErrorLevel
	case "warn", "warning":
		l = zerolog.WarnLevel
	case "debug":
		l = zerolog.DebugLevel
	default:
		l = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).
		Level(l).
		With().
		Timestamp().
		Logger()

	return &Logger{logger: &logger}
}

// Debug logs at debug level.
func (l *Logger) Debug(message string, args ...interface{}) {
	l.emit(l.logger.Debug(), message, args...)
}

// Info logs at info level.
func (l *Logger) Info(message string, args ...interface{}) {
	l.emit(l.logger.Info(), message, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(message string, args ...interface{}) {
	l.emit(l.logger.Warn(), message, args...)
}

// Error logs at error level. Accepts a string or an error.
func (l *Logger) Error(message interface{}, args ...interface{}) {
	l.emit(l.logger.Error(), stringify(message), args...)
}

// Fatal logs at fatal level and exits the process.
func (l *Logger) Fatal(message interface{}, args ...interface{}) {
	l.emit(l.logger.Fatal(), stringify(message), args...)
	os.Exit(1)
}

func (l *Logger) emit(ev *zerolog.Event, message string, args ...interface{}) {
	if len(args) == 0 {
		ev.Msg(message)
		return
	}
	ev.Msgf(message, args...)
}

func stringify(message interface{}) string {
	switch msg := message.(type) {
	case error:
		return msg.Error()
	case string:
		return msg
	default:
		return fmt.Sprintf("%v", message)
	}
}

// Zerolog exposes the underlying zerolog logger for middleware that
// needs event-level control.
func (l *Logger) Zerolog() *zerolog.Logger {
	return l.logger
}
