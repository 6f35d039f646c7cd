package logging

// MockLogger captures log entries for verification in tests. Loggers
// derived via WithError/WithField/WithFields append to the same root
// entry list.
type MockLogger struct {
	root          *MockLogger
	Entries       []LogEntry
	pendingError  error
	pendingFields []Field
}

// LogEntry represents a single log entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	all := append(append([]Field{}, m.pendingFields...), fields...)
	entry := LogEntry{
		Level:   level,
		Message: msg,
		Fields:  all,
		Error:   m.pendingError,
	}
	if m.root != nil {
		m.root.Entries = append(m.root.Entries, entry)
		return
	}
	m.Entries = append(m.Entries, entry)
}

func (m *MockLogger) rootLogger() *MockLogger {
	if m.root != nil {
		return m.root
	}
	return m
}

// Debug logs a debug-level message with optional fields.
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }

// Info logs an info-level message with optional fields.
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("INFO", msg, fields) }

// Warn logs a warning-level message with optional fields.
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("WARN", msg, fields) }

// Error logs an error-level message with optional fields.
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// Fatal records the entry instead of exiting, so tests can assert on it.
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("FATAL", msg, fields) }

// WithError returns a new logger with an error attached to subsequent entries.
func (m *MockLogger) WithError(err error) Logger {
	return &MockLogger{
		root:          m.rootLogger(),
		pendingError:  err,
		pendingFields: m.pendingFields,
	}
}

// WithField returns a new logger with a single field attached.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a new logger with multiple fields attached.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	return &MockLogger{
		root:          m.rootLogger(),
		pendingError:  m.pendingError,
		pendingFields: append(append([]Field{}, m.pendingFields...), fields...),
	}
}
