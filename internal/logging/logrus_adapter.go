package logging

import (
	"github.com/sirupsen/logrus"
)

// defaultLogger is the process-wide logrus instance handed out by GetLogger.
var defaultLogger = logrus.New()

// GetLogger returns the shared logrus logger used as the default across packages.
func GetLogger() *logrus.Logger {
	return defaultLogger
}

// SetAllLogLevels sets the level on both the global logrus instance and the
// shared default logger so every package-level logger picks it up.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)
	defaultLogger.SetLevel(level)
}

// LogrusAdapter adapts logrus to the Logger interface. This keeps the rest
// of the codebase decoupled from the underlying logging implementation.
type LogrusAdapter struct {
	logger *logrus.Logger
	entry  *logrus.Entry
}

// NewLogrusAdapter creates a Logger backed by the given logrus instance.
// A nil logger falls back to the shared default.
func NewLogrusAdapter(logger *logrus.Logger) Logger {
	if logger == nil {
		logger = defaultLogger
	}
	return &LogrusAdapter{
		logger: logger,
		entry:  logrus.NewEntry(logger),
	}
}

// Debug logs a debug-level message with optional fields
func (l *LogrusAdapter) Debug(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Debug(msg)
}

// Info logs an info-level message with optional fields
func (l *LogrusAdapter) Info(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Info(msg)
}

// Warn logs a warning-level message with optional fields
func (l *LogrusAdapter) Warn(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Warn(msg)
}

// Error logs an error-level message with optional fields
func (l *LogrusAdapter) Error(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Error(msg)
}

// WithError returns a new logger with an error field attached
func (l *LogrusAdapter) WithError(err error) Logger {
	return &LogrusAdapter{
		logger: l.logger,
		entry:  l.entry.WithError(err),
	}
}

// WithField returns a new logger with a single field attached
func (l *LogrusAdapter) WithField(key string, value interface{}) Logger {
	return &LogrusAdapter{
		logger: l.logger,
		entry:  l.entry.WithField(key, value),
	}
}

// convertFields converts a Field slice to logrus.Fields
func convertFields(fields []Field) logrus.Fields {
	logrusFields := make(logrus.Fields, len(fields))
	for _, field := range fields {
		logrusFields[field.Key] = field.Value
	}
	return logrusFields
}
