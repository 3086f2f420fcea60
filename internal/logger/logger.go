// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Structured diagnostics logger backed by zerolog

package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Field names shared across components
const (
	FieldComponent = "component"
	FieldService   = "service"
)

// Config contains logging configuration
type Config struct {
	Level   string    // trace, debug, info, warn, error
	Format  string    // console or json
	NoColor bool      // Disable colors in console format
	Output  io.Writer // Defaults to os.Stderr
}

// ApplyDefaults fills in unset fields
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == nil {
		c.Output = os.Stderr
	}
}

// Logger wraps zerolog.Logger with component tagging
type Logger struct {
	logger zerolog.Logger
}

// New creates a logger for the given service
func New(cfg Config, serviceName string) *Logger {
	cfg.ApplyDefaults()

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = cfg.Output
	if strings.ToLower(cfg.Format) == "console" {
		out = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			NoColor:    cfg.NoColor,
			TimeFormat: "15:04:05",
		}
	}

	zl := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str(FieldService, serviceName).
		Logger()

	return &Logger{logger: zl}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// WithComponent returns a logger tagged with a component name
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{logger: l.logger.With().Str(FieldComponent, name).Logger()}
}

// WithError returns a logger with an error field
func (l *Logger) WithError(err error) *Logger {
	return &Logger{logger: l.logger.With().Err(err).Logger()}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	addFields(l.logger.Debug(), fields...).Msg(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	addFields(l.logger.Warn(), fields...).Msg(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	addFields(l.logger.Error(), fields...).Msg(msg)
}

func addFields(event *zerolog.Event, fields ...map[string]interface{}) *zerolog.Event {
	for _, f := range fields {
		for k, v := range f {
			event = event.Interface(k, v)
		}
	}
	return event
}
