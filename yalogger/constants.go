package yalogger

// Level mirrors logrus levels one to one, so a Level converts to logrus.Level directly.
type Level uint8

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

type BaseLoggerType uint8

const (
	Logrus BaseLoggerType = iota
)

const (
	KeyRequestID       = "request_id"
	KeySystemRequestID = "system_request_id"
	KeyUserID          = "user_id"
	KeyUpdateID        = "update_id"
	KeyUpdateType      = "update_type"
	KeyComponent       = "component"
)

const DefaultTimestampFormat = "2006-01-02 15:04:05"
