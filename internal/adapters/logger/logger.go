// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/ecstagger/internal/core/domain"
	"go.trai.ch/ecstagger/internal/core/ports"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	level    *slog.LevelVar
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
	attrs    []any
}

// New creates a new Logger writing JSON lines to stderr at info level.
func New() ports.Logger {
	return newLogger(os.Stderr, true, domain.LogLevelInfo)
}

// NewFromConfig creates a Logger honoring the configured level and format.
func NewFromConfig(cfg domain.LogConfig, w io.Writer) (*Logger, error) {
	level, err := domain.ParseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}
	return newLogger(w, cfg.Format != "text", level), nil
}

func newLogger(w io.Writer, jsonMode bool, level domain.LogLevel) *Logger {
	l := &Logger{
		level:    &slog.LevelVar{},
		jsonMode: jsonMode,
		output:   w,
	}
	l.level.Set(slog.Level(level))
	l.logger = slog.New(l.newHandler(w))
	return l
}

func (l *Logger) newHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: l.level}
	if l.jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.newHandler(w)).With(l.attrs...)
}

// SetJSON switches between JSON and text logging.
// The output destination is preserved from SetOutput calls.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.newHandler(l.output)).With(l.attrs...)
}

// SetLevel changes the minimum level. Loggers derived with With share it.
func (l *Logger) SetLevel(level domain.LogLevel) {
	l.level.Set(slog.Level(level))
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// With returns a Logger that adds args to every entry.
func (l *Logger) With(args ...any) ports.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	attrs := make([]any, 0, len(l.attrs)+len(args))
	attrs = append(attrs, l.attrs...)
	attrs = append(attrs, args...)

	return &Logger{
		logger:   l.logger.With(args...),
		level:    l.level,
		jsonMode: l.jsonMode,
		output:   l.output,
		attrs:    attrs,
	}
}

// Error logs an error message.
// In JSON mode the chain is attached as a "causes" attribute,
// otherwise it is rendered as an indented "Caused by" list.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	messages := collectMessages(err)

	if l.jsonMode {
		args := []any{"error", err.Error()}
		if len(messages) > 1 {
			args = append(args, "causes", messages[1:])
		}
		l.logger.Error(messages[0], args...)
		return
	}

	l.logger.Error(formatMessages(messages))
}

// collectMessages traverses the error chain programmatically.
func collectMessages(err error) []string {
	var messages []string
	current := err

	for current != nil {
		m, ok := current.(messager)
		if !ok {
			// Standard error: append full Error() and stop
			messages = append(messages, current.Error())
			break
		}
		messages = append(messages, m.Message())
		current = errors.Unwrap(current)
	}

	return messages
}

func formatMessages(messages []string) string {
	var formattedLines []string

	for i, msg := range messages {
		lines := strings.Split(msg, "\n")

		if i == 0 {
			formattedLines = append(formattedLines, "Error: "+lines[0])
			for _, line := range lines[1:] {
				formattedLines = append(formattedLines, "       "+line)
			}
			continue
		}

		if i == 1 {
			formattedLines = append(formattedLines, "", "  Caused by:")
		}
		formattedLines = append(formattedLines, "    → "+lines[0])
		for _, line := range lines[1:] {
			formattedLines = append(formattedLines, "      "+line)
		}
	}

	return strings.Join(formattedLines, "\n")
}
