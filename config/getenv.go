package config

import (
	"os"

	"github.com/YaCodeDev/GoYaTgBotAPI/valueparser"
	"github.com/YaCodeDev/GoYaTgBotAPI/yalogger"
)

// GetEnv retrieves the environment variable key parsed as T.
// Unset or unparsable values fall back to fallback with a warning.
//
// Example usage:
//
//	mode := config.GetEnv("YATG_RENDER_MODE", "strict", false, log)
//
// Calls log.Fatalf when the variable is required and missing.
func GetEnv[T valueparser.ParsableType](
	key string,
	fallback T,
	required bool,
	log yalogger.Logger,
) T {
	safetyCheck(&log)

	if value, exists := os.LookupEnv(key); exists {
		parsed, err := valueparser.ParseValue[T](value)
		if err == nil {
			return parsed
		}

		log.Errorf("Failed to parse environment variable %s: %v", key, err)
	}

	if required {
		log.Fatalf("Environment variable %s is required", key)
	}

	log.Debugf("Environment variable %s is not set, using default value %v", key, fallback)

	return fallback
}

// GetEnvArray retrieves the environment variable key split by separator
// ("," when nil) with every part parsed as T.
//
// Example usage:
//
//	allowed := config.GetEnvArray("YATG_ALLOWED_UPDATES", []string{"message"}, nil, false, log)
//
// Calls log.Fatalf when the variable is required and missing.
func GetEnvArray[T valueparser.ParsableType](
	key string,
	fallback []T,
	separator *string,
	required bool,
	log yalogger.Logger,
) []T {
	safetyCheck(&log)

	if value, exists := os.LookupEnv(key); exists {
		parsed, err := valueparser.ParseArray[T](value, separator)
		if err == nil {
			return parsed
		}

		log.Errorf("Failed to parse environment variable %s: %v", key, err)
	}

	if required {
		log.Fatalf("Environment variable %s is required", key)
	}

	log.Debugf("Environment variable %s is not set, using default value %v", key, fallback)

	return fallback
}

// GetEnvMap retrieves the environment variable key as a map. Entries are
// split by entrySeparator ("," when nil) and each entry on the first
// kvSeparator (":" when nil).
//
// Example usage:
//
//	templates := config.GetEnvMap("YATG_RENDER_TEMPLATES", map[string]string{}, false, &semicolon, &equals, log)
//
// Calls log.Fatalf when the variable is required and missing.
func GetEnvMap[K valueparser.ParsableComparableType, V valueparser.ParsableType](
	key string,
	fallback map[K]V,
	required bool,
	entrySeparator *string,
	kvSeparator *string,
	log yalogger.Logger,
) map[K]V {
	safetyCheck(&log)

	if value, exists := os.LookupEnv(key); exists {
		parsed, err := valueparser.ParseMap[K, V](value, entrySeparator, kvSeparator)
		if err == nil {
			return parsed
		}

		log.Errorf("Failed to parse environment variable %s: %v", key, err)
	}

	if required {
		log.Fatalf("Environment variable %s is required", key)
	}

	log.Debugf("Environment variable %s is not set, using default value %v", key, fallback)

	return fallback
}
