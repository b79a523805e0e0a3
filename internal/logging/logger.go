package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Field is a structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err creates a field holding an error under the "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging interface used throughout the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger returns a console logger on stderr.
func NewDefaultLogger() *ZerologAdapter {
	return NewConsoleLogger(os.Stderr, zerolog.WarnLevel)
}

// NewLogger returns a JSON logger tagged with the given component name.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

// NewConsoleLogger returns a human-readable logger writing to w at the given level.
func NewConsoleLogger(w io.Writer, level zerolog.Level) *ZerologAdapter {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	zl := zerolog.New(cw).Level(level).With().Timestamp().Logger()
	return NewZerologAdapter(zl)
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *ZerologAdapter {
	return NewZerologAdapter(zerolog.Nop())
}

// ParseLevel converts a level name ("debug", "info", "warn", ...) to a
// zerolog.Level. Matching is case-insensitive.
func ParseLevel(name string) (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// Debug logs a message at debug level.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	z.applyFields(z.logger.Debug(), fields).Msg(msg)
}

// Info logs a message at info level.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	z.applyFields(z.logger.Info(), fields).Msg(msg)
}

// Warn logs a message at warn level.
func (z *ZerologAdapter) Warn(msg string, fields ...Field) {
	z.applyFields(z.logger.Warn(), fields).Msg(msg)
}

// Error logs a message at error level with the given cause.
func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	z.applyFields(z.logger.Error().Err(err), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (z *ZerologAdapter) Printf(format string, args ...any) {
	z.logger.Info().Msgf(format, args...)
}

// Println logs the space-joined arguments at info level.
func (z *ZerologAdapter) Println(args ...any) {
	z.logger.Info().Msg(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func (z *ZerologAdapter) applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}
