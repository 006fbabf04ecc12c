// pattern: Imperative Shell

package logging

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NopLogger returns a logger that discards all output.
// Use in tests or when logging is not configured.
func NopLogger() *ScopedLogger {
	return &ScopedLogger{}
}

// TestLogManager records entries in memory instead of writing a file.
type TestLogManager struct {
	observed *observer.ObservedLogs
	baseZap  *zap.Logger
	loggers  map[string]*ScopedLogger
	mu       sync.RWMutex
}

// NewTestLogManager creates a LoggerProvider for tests that keeps every
// entry at debug level and above.
func NewTestLogManager() *TestLogManager {
	core, observed := observer.New(zapcore.DebugLevel)
	return &TestLogManager{
		observed: observed,
		baseZap:  zap.New(core),
		loggers:  make(map[string]*ScopedLogger),
	}
}

// For returns a scoped logger for the given scope name.
func (m *TestLogManager) For(scope string) *ScopedLogger {
	return cachedLogger(&m.mu, m.loggers, m.baseZap, zapcore.DebugLevel, scope)
}

// Entries returns everything logged so far, oldest first.
func (m *TestLogManager) Entries() []LogEntry {
	all := m.observed.All()
	entries := make([]LogEntry, 0, len(all))
	for _, e := range all {
		entries = append(entries, LogEntry{
			Timestamp: e.Time,
			Level:     ParseLevel(e.Level.String()),
			Scope:     e.LoggerName,
			Message:   e.Message,
			Fields:    e.ContextMap(),
		})
	}
	return entries
}

// EntriesWithMessage returns the entries whose message contains substr.
func (m *TestLogManager) EntriesWithMessage(substr string) []LogEntry {
	var out []LogEntry
	for _, e := range m.Entries() {
		if strings.Contains(e.Message, substr) {
			out = append(out, e)
		}
	}
	return out
}
