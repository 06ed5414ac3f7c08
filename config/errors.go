package config

import "errors"

var ErrInvalidDotEnvFileFormat = errors.New("invalid .env file format")
