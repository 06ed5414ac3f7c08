package config

const (
	DotEnvFile    = ".env"
	DotEnvKVParts = 2
)
