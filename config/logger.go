package config

import "github.com/YaCodeDev/GoYaTgBotAPI/yalogger"

const EnvLogLevel = "YATG_LOG_LEVEL"

// NewLoggerFromEnv builds a logrus-backed logger whose level comes from
// YATG_LOG_LEVEL (info when unset).
func NewLoggerFromEnv() yalogger.Logger {
	bootstrap := yalogger.NewBaseLogger(nil).NewLogger()

	return yalogger.NewBaseLogger(&yalogger.Config{
		BaseLoggerType:   yalogger.Logrus,
		Level:            GetEnv(EnvLogLevel, yalogger.InfoLevel, false, bootstrap),
		TimestampFormat:  yalogger.DefaultTimestampFormat,
		DisableTimestamp: true,
	}).NewLogger()
}
