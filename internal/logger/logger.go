// Package logger is the structured logger shared by the styling engine and
// the command line.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Logger.
type Options struct {
	// Level is a zerolog level name; empty means "info".
	Level string
	// Console switches from JSON lines to zerolog's human readable writer.
	Console bool
	Writer  io.Writer
}

// Logger wraps zerolog. A nil *Logger discards everything, so components can
// hold an optional logger without checking it.
type Logger struct {
	base zerolog.Logger
}

// New creates a Logger from opts.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.Console {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		output = console
	}

	return &Logger{base: zerolog.New(output).Level(level).With().Timestamp().Logger()}, nil
}

// With returns a logger that adds key=value to every entry.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Interface(key, value).Logger()}
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level zerolog.Level) bool {
	return l != nil && l.base.GetLevel() <= level
}

// Debug writes a debug entry. fields are alternating keys and values.
func (l *Logger) Debug(msg string, fields ...any) {
	if l == nil {
		return
	}
	withFields(l.base.Debug(), fields).Msg(msg)
}

// Info writes an informational entry.
func (l *Logger) Info(msg string, fields ...any) {
	if l == nil {
		return
	}
	withFields(l.base.Info(), fields).Msg(msg)
}

// Warn writes a warning.
func (l *Logger) Warn(msg string, fields ...any) {
	if l == nil {
		return
	}
	withFields(l.base.Warn(), fields).Msg(msg)
}

// Error writes an error entry carrying err.
func (l *Logger) Error(err error, msg string, fields ...any) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	withFields(event, fields).Msg(msg)
}

func withFields(event *zerolog.Event, fields []any) *zerolog.Event {
	if event == nil {
		return nil
	}
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprint(fields[i])
		}
		event = event.Interface(key, fields[i+1])
	}
	return event
}
