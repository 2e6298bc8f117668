// Package logging provides the structured logger used by the HTTP server and
// the CLI. It is a thin layer over log/slog that carries a component name,
// persistent fields and the per-request id.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel converts a configured level name to a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger interface for structured logging
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
	Error(ctx context.Context, err error, msg string, fields ...interface{})

	With(fields ...interface{}) Logger
	WithComponent(component string) Logger
}

// ServiceLogger implements Logger on top of slog.
type ServiceLogger struct {
	logger    *slog.Logger
	level     LogLevel
	component string
	fields    []slog.Attr
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level     LogLevel
	Format    string // "json" or "text"
	Output    io.Writer
	AddSource bool
	Component string
}

// DefaultConfig returns default logger configuration
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:  LevelInfo,
		Format: "text",
		Output: os.Stderr,
	}
}

// NewLogger creates a new structured logger
func NewLogger(config *LoggerConfig) *ServiceLogger {
	if config == nil {
		config = DefaultConfig()
	}
	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     config.Level.slogLevel(),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &ServiceLogger{
		logger:    slog.New(handler),
		level:     config.Level,
		component: config.Component,
	}
}

// NewNop returns a logger that discards everything.
func NewNop() *ServiceLogger {
	return NewLogger(&LoggerConfig{Level: LevelError + 1, Output: io.Discard})
}

// Debug logs a debug message
func (l *ServiceLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	if l.level > LevelDebug {
		return
	}
	l.log(ctx, slog.LevelDebug, nil, msg, fields...)
}

// Info logs an info message
func (l *ServiceLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	if l.level > LevelInfo {
		return
	}
	l.log(ctx, slog.LevelInfo, nil, msg, fields...)
}

// Warn logs a warning message
func (l *ServiceLogger) Warn(ctx context.Context, err error, msg string, fields ...interface{}) {
	if l.level > LevelWarn {
		return
	}
	l.log(ctx, slog.LevelWarn, err, msg, fields...)
}

// Error logs an error message
func (l *ServiceLogger) Error(ctx context.Context, err error, msg string, fields ...interface{}) {
	if l.level > LevelError {
		return
	}
	l.log(ctx, slog.LevelError, err, msg, fields...)
}

// With creates a new logger with additional fields
func (l *ServiceLogger) With(fields ...interface{}) Logger {
	merged := make([]slog.Attr, 0, len(l.fields)+len(fields)/2)
	merged = append(merged, l.fields...)
	merged = append(merged, toAttrs(fields)...)

	return &ServiceLogger{
		logger:    l.logger,
		level:     l.level,
		component: l.component,
		fields:    merged,
	}
}

// WithComponent creates a new logger with component context
func (l *ServiceLogger) WithComponent(component string) Logger {
	return &ServiceLogger{
		logger:    l.logger,
		level:     l.level,
		component: component,
		fields:    l.fields,
	}
}

func (l *ServiceLogger) log(ctx context.Context, level slog.Level, err error, msg string, fields ...interface{}) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.logger.Handler().Enabled(ctx, level) {
		return
	}

	attrs := make([]slog.Attr, 0, len(l.fields)+len(fields)/2+3)

	if l.component != "" {
		attrs = append(attrs, slog.String("component", l.component))
	}
	if id := RequestIDFrom(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	attrs = append(attrs, l.fields...)
	attrs = append(attrs, toAttrs(fields)...)

	record := slog.NewRecord(time.Now(), level, msg, 0)
	record.AddAttrs(attrs...)

	_ = l.logger.Handler().Handle(ctx, record)
}

// toAttrs pairs up key/value arguments. Non-string keys and a trailing key
// without a value are dropped.
func toAttrs(fields []interface{}) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok {
			attrs = append(attrs, slog.Any(key, fields[i+1]))
		}
	}
	return attrs
}

type requestIDKey struct{}

// ContextWithRequestID returns a context carrying the request id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request id stored in ctx, if any.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// PerfLogger tracks how long an operation took.
type PerfLogger struct {
	Logger
	startTime time.Time
}

// StartOperation begins performance tracking
func StartOperation(l Logger, operation string) *PerfLogger {
	return &PerfLogger{
		Logger:    l.With("operation", operation),
		startTime: time.Now(),
	}
}

// End completes performance tracking and logs the duration
func (p *PerfLogger) End(ctx context.Context, fields ...interface{}) {
	duration := time.Since(p.startTime)
	fields = append(fields, "duration_ms", duration.Milliseconds())
	p.Info(ctx, "Operation completed", fields...)
}

// EndWithError completes performance tracking and logs an error
func (p *PerfLogger) EndWithError(ctx context.Context, err error) {
	duration := time.Since(p.startTime)
	p.Error(ctx, err, "Operation failed", "duration_ms", duration.Milliseconds())
}
