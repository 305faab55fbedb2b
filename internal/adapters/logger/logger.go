// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/relay/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Log output formats accepted by SetFormat.
const (
	FormatAuto   = "auto"
	FormatPretty = "pretty"
	FormatText   = "text"
	FormatJSON   = "json"
)

var (
	_ ports.Logger      = (*Logger)(nil)
	_ ports.LevelSetter = (*Logger)(nil)
)

// messager describes an error that can report its own message without the chain.
// zerr.Error provides it.
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured metadata, as zerr.Error does.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
	level  *slog.LevelVar
	output io.Writer
	format string
	pretty bool
}

// New creates a Logger writing to stderr. Output is pretty printed when
// stderr is a terminal and slog text otherwise.
func New() *Logger {
	return NewWithOutput(os.Stderr)
}

// NewWithOutput creates a Logger writing to w in auto format.
func NewWithOutput(w io.Writer) *Logger {
	l := &Logger{
		level:  &slog.LevelVar{},
		output: w,
		format: FormatAuto,
	}
	l.rebuild()
	return l
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetFormat switches the output format: auto, pretty, text or json.
func (l *Logger) SetFormat(format string) error {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "":
		format = FormatAuto
	case FormatAuto, FormatPretty, FormatText, FormatJSON:
	default:
		return zerr.With(zerr.New("unknown log format"), "format", format)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.format = format
	l.rebuild()
	return nil
}

// SetLevel sets the minimum level: debug, info, warn or error.
func (l *Logger) SetLevel(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return zerr.With(zerr.Wrap(err, "unknown log level"), "level", level)
	}
	l.level.Set(lvl)
	return nil
}

// rebuild replaces the handler. Callers must hold l.mu or own l exclusively.
func (l *Logger) rebuild() {
	w := l.output
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: l.level}
	format := l.format
	if format == FormatAuto {
		format = FormatText
		if isTerminal(w) {
			format = FormatPretty
		}
	}

	var handler slog.Handler
	switch format {
	case FormatPretty:
		handler = NewPrettyHandler(w, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	l.pretty = format == FormatPretty
	l.logger = slog.New(handler)
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

// Error logs err. Pretty output renders the cause chain; structured output
// carries the chain as an "error" attribute plus any zerr metadata.
func (l *Logger) Error(err error, args ...any) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := collectErrorEntries(err)
	if l.pretty {
		l.logger.Error(formatErrorEntries(entries), args...)
		return
	}

	messages := make([]string, 0, len(entries))
	for _, e := range entries {
		messages = append(messages, e.Message)
	}
	attrs := append([]any{}, args...)
	attrs = append(attrs, "error", strings.Join(messages, ": "))
	for _, e := range entries {
		for _, k := range sortedKeys(e.Metadata) {
			attrs = append(attrs, k, e.Metadata[k])
		}
	}
	l.logger.Error(entries[0].Message, attrs...)
}

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens err into its chain of messages.
// Joined errors contribute each of their members in order.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	current := err

	for current != nil {
		if joined, ok := current.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				entries = append(entries, collectErrorEntries(e)...)
			}
			return entries
		}

		m, ok := current.(messager)
		if !ok {
			return append(entries, ErrorEntry{Message: current.Error()})
		}

		entry := ErrorEntry{Message: m.Message()}
		if md, ok := current.(metadataer); ok {
			entry.Metadata = md.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as a headline followed by its causes.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, e := range entries {
		msgLines := strings.Split(e.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			for _, k := range sortedKeys(e.Metadata) {
				lines = append(lines, "       "+k+": "+formatValue(e.Metadata[k]))
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		for _, k := range sortedKeys(e.Metadata) {
			lines = append(lines, "      "+k+": "+formatValue(e.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatValue(v any) string {
	return slog.AnyValue(v).String()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // File descriptors fit in int
}
