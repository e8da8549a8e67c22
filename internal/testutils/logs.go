package testutils

import (
	"context"
	"log/slog"
	"sync"
)

// LogEntry is a captured log record flattened into a map. The message is
// stored under "msg" and the level under "level".
type LogEntry map[string]any

// LogRecorder is a memory-backed slog.Handler. Attributes added with
// Logger.With are included in every entry recorded through the derived logger.
type LogRecorder struct {
	state *recorderState
	attrs []slog.Attr
}

type recorderState struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLogRecorder creates a recorder and a debug-level logger writing to it.
func NewLogRecorder() (*LogRecorder, *slog.Logger) {
	r := &LogRecorder{state: &recorderState{}}
	return r, slog.New(r)
}

// Enabled satisfies slog.Handler; every level is recorded.
func (r *LogRecorder) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle satisfies slog.Handler.
func (r *LogRecorder) Handle(_ context.Context, rec slog.Record) error {
	entry := LogEntry{
		"level": rec.Level.String(),
		"msg":   rec.Message,
	}
	for _, a := range r.attrs {
		entry[a.Key] = a.Value.Any()
	}
	rec.Attrs(func(a slog.Attr) bool {
		entry[a.Key] = a.Value.Any()
		return true
	})

	r.state.mu.Lock()
	r.state.entries = append(r.state.entries, entry)
	r.state.mu.Unlock()
	return nil
}

// WithAttrs satisfies slog.Handler.
func (r *LogRecorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(r.attrs)+len(attrs))
	merged = append(merged, r.attrs...)
	merged = append(merged, attrs...)
	return &LogRecorder{state: r.state, attrs: merged}
}

// WithGroup satisfies slog.Handler. Groups are flattened.
func (r *LogRecorder) WithGroup(string) slog.Handler {
	return r
}

// Entries returns a copy of every captured entry.
func (r *LogRecorder) Entries() []LogEntry {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	out := make([]LogEntry, len(r.state.entries))
	copy(out, r.state.entries)
	return out
}

// Find returns the captured entries with the given message.
func (r *LogRecorder) Find(msg string) []LogEntry {
	var found []LogEntry
	for _, e := range r.Entries() {
		if e["msg"] == msg {
			found = append(found, e)
		}
	}
	return found
}
