package config

import (
	"strings"

	"github.com/YaCodeDev/GoYaTgBotAPI/yalogger"
)

// safetyCheck replaces a nil logger with a default one and says so.
func safetyCheck(log *yalogger.Logger) {
	if *log == nil {
		*log = yalogger.NewBaseLogger(nil).NewLogger()

		(*log).Warn("Logger is nil, using default logger")
	}
}

// unquote strips one pair of matching single or double quotes.
func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}

	return value
}

func isCommentOrBlank(line string) bool {
	trimmed := strings.TrimSpace(line)

	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
