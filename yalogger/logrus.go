package yalogger

import (
	"maps"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type logrusAdapter struct {
	entry *logrus.Entry
}

type baseLogrus struct {
	logger *logrus.Logger
}

// NewBaseLogger creates a base logger from config. A nil config gives an
// Info-level text logger without timestamps.
//
// Panics when config names an unsupported BaseLoggerType.
//
// Example usage:
//
//	log := yalogger.NewBaseLogger(&yalogger.Config{Level: yalogger.DebugLevel}).NewLogger()
func NewBaseLogger(config *Config) BaseLogger {
	if config == nil {
		config = &Config{
			BaseLoggerType:   Logrus,
			Level:            InfoLevel,
			TimestampFormat:  DefaultTimestampFormat,
			DisableTimestamp: true,
		}
	}

	switch config.BaseLoggerType {
	case Logrus:
		base := logrus.New()
		base.SetLevel(logrus.Level(config.Level))
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    config.FullTimestamp,
			TimestampFormat:  config.TimestampFormat,
			DisableTimestamp: config.DisableTimestamp,
		})

		if config.Output != nil {
			base.SetOutput(config.Output)
		}

		return &baseLogrus{logger: base}
	default:
		panic("Unsupported logger type, you are a teapot!!!")
	}
}

func (b *baseLogrus) NewLogger() Logger {
	return &logrusAdapter{entry: logrus.NewEntry(b.logger)}
}

func (l *logrusAdapter) Info(msg string) {
	l.entry.Info(msg)
}

func (l *logrusAdapter) Infof(format string, args ...any) {
	l.entry.Infof(format, args...)
}

func (l *logrusAdapter) Error(msg string) {
	l.entry.Error(msg)
}

func (l *logrusAdapter) Errorf(format string, args ...any) {
	l.entry.Errorf(format, args...)
}

func (l *logrusAdapter) Warn(msg string) {
	l.entry.Warn(msg)
}

func (l *logrusAdapter) Warnf(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

func (l *logrusAdapter) Debug(msg string) {
	l.entry.Debug(msg)
}

func (l *logrusAdapter) Debugf(format string, args ...any) {
	l.entry.Debugf(format, args...)
}

func (l *logrusAdapter) Fatal(msg string) {
	l.entry.Fatal(msg)
}

func (l *logrusAdapter) Fatalf(format string, args ...any) {
	l.entry.Fatalf(format, args...)
}

func (l *logrusAdapter) Trace(msg string) {
	l.entry.Trace(msg)
}

func (l *logrusAdapter) Tracef(format string, args ...any) {
	l.entry.Tracef(format, args...)
}

func (l *logrusAdapter) WithField(key string, value any) Logger {
	return &logrusAdapter{entry: l.entry.WithField(key, value)}
}

func (l *logrusAdapter) WithFields(fields map[string]any) Logger {
	return &logrusAdapter{entry: l.entry.WithFields(fields)}
}

func (l *logrusAdapter) WithRequestStringID(id string) Logger {
	return l.WithField(KeyRequestID, id)
}

func (l *logrusAdapter) WithRequestUUID(id uuid.UUID) Logger {
	return l.WithField(KeyRequestID, id.String())
}

func (l *logrusAdapter) WithRequestID(id uint64) Logger {
	return l.WithField(KeyRequestID, id)
}

// WithRandomRequestID tags the logger with a fresh random UUID.
func (l *logrusAdapter) WithRandomRequestID() Logger {
	return l.WithRequestUUID(uuid.New())
}

func (l *logrusAdapter) WithSystemRequestID(id uint8) Logger {
	return l.WithField(KeySystemRequestID, id)
}

func (l *logrusAdapter) WithUserID(userID uint64) Logger {
	return l.WithField(KeyUserID, userID)
}

func (l *logrusAdapter) GetFields() map[string]any {
	return maps.Clone(map[string]any(l.entry.Data))
}

func (l *logrusAdapter) GetField(key string) any {
	return l.entry.Data[key]
}

func (l *logrusAdapter) DeleteField(key string) {
	data := maps.Clone(l.entry.Data)
	delete(data, key)

	l.entry = logrus.NewEntry(l.entry.Logger).WithFields(data)
}
