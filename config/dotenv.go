package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/YaCodeDev/GoYaTgBotAPI/yaerrors"
)

// LoadDotEnv reads KEY=VALUE lines from path (DotEnvFile when empty) into the
// process environment. Variables already set are left untouched. A missing
// file is not an error.
//
// Example usage:
//
//	if err := config.LoadDotEnv(""); err != nil {
//		log.Warnf("Error loading .env file: %v", err)
//	}
func LoadDotEnv(path string) yaerrors.Error {
	if path == "" {
		path = DotEnvFile
	}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return yaerrors.FromError(http.StatusInternalServerError, err, "[CONFIG] failed to open "+path)
	}

	defer file.Close() //nolint:errcheck

	scanner := bufio.NewScanner(file)

	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := scanner.Text()
		if isCommentOrBlank(line) {
			continue
		}

		parts := strings.SplitN(strings.TrimPrefix(strings.TrimSpace(line), "export "), "=", DotEnvKVParts)
		if len(parts) != DotEnvKVParts || strings.TrimSpace(parts[0]) == "" {
			return yaerrors.FromError(
				http.StatusInternalServerError,
				ErrInvalidDotEnvFileFormat,
				fmt.Sprintf("[CONFIG] %s:%d", path, lineNumber),
			)
		}

		key := strings.TrimSpace(parts[0])
		if _, exists := os.LookupEnv(key); exists {
			continue
		}

		if err := os.Setenv(key, unquote(strings.TrimSpace(parts[1]))); err != nil {
			return yaerrors.FromError(
				http.StatusInternalServerError,
				err,
				fmt.Sprintf("[CONFIG] failed to set %s", key),
			)
		}
	}

	if err := scanner.Err(); err != nil {
		return yaerrors.FromError(http.StatusInternalServerError, err, "[CONFIG] failed to read "+path)
	}

	return nil
}
