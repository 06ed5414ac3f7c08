// Package yalogger is the structured logging facade used across the module.
// The only back-end is logrus.
package yalogger

import (
	"io"

	"github.com/google/uuid"
)

// Config defines the configuration options for the logger.
//
// BaseLoggerType: The back-end to use (only Logrus today).
// Level: The minimum level to output.
// FullTimestamp: Whether to print the full timestamp instead of elapsed seconds.
// DisableTimestamp: Whether to drop timestamps entirely.
// TimestampFormat: Layout used when timestamps are printed.
// Output: Where to write; stderr when nil.
type Config struct {
	BaseLoggerType   BaseLoggerType
	Level            Level
	FullTimestamp    bool
	DisableTimestamp bool
	TimestampFormat  string
	Output           io.Writer
}

// BaseLogger owns the configured back-end and hands out Logger instances.
type BaseLogger interface {
	// NewLogger creates a Logger with an empty field set.
	NewLogger() Logger
}

// Logger defines a structured logging interface with level methods and
// key-value context fields.
//
// The With* methods return a new Logger and leave the receiver untouched:
//
//	log := base.NewLogger().WithField(yalogger.KeyComponent, "decoder")
//	log.WithField(yalogger.KeyUpdateID, update.UpdateID).Debug("update decoded")
type Logger interface {
	Info(msg string)
	Infof(format string, args ...any)
	Trace(msg string)
	Tracef(format string, args ...any)
	Error(msg string)
	Errorf(format string, args ...any)
	Warn(msg string)
	Warnf(format string, args ...any)
	Debug(msg string)
	Debugf(format string, args ...any)

	// Fatal logs and terminates the process.
	Fatal(msg string)
	Fatalf(format string, args ...any)

	WithField(key string, value any) Logger
	WithFields(fields map[string]any) Logger

	// WithRequestStringID, WithRequestUUID, WithRequestID and
	// WithRandomRequestID all set KeyRequestID, so logs of one unit of work
	// (one webhook delivery, one getUpdates batch) can be correlated.
	WithRequestStringID(id string) Logger
	WithRequestUUID(id uuid.UUID) Logger
	WithRequestID(id uint64) Logger
	WithRandomRequestID() Logger

	WithSystemRequestID(id uint8) Logger
	WithUserID(userID uint64) Logger

	// GetFields returns a copy of the current context fields.
	GetFields() map[string]any

	// GetField returns the value stored under key, or nil.
	//
	// Example usage:
	//
	//   updateID, ok := log.GetField(yalogger.KeyUpdateID).(int64)
	GetField(key string) any

	// DeleteField removes key from this logger's context.
	DeleteField(key string)
}
