package yatgdecoder

import (
	"github.com/YaCodeDev/GoYaTgBotAPI/config"
	"github.com/YaCodeDev/GoYaTgBotAPI/yalogger"
)

const EnvFormat = "YATG_DECODER_FORMAT"

type Config struct {
	Format Format
}

// ConfigFromEnv reads YATG_DECODER_FORMAT ("json" or "msgpack", json by default).
func ConfigFromEnv(log yalogger.Logger) Config {
	return Config{
		Format: config.GetEnv(EnvFormat, FormatJSON, false, log),
	}
}

// NewFromConfig is New with cfg applied before opts.
func NewFromConfig(cfg Config, opts ...Option) *Decoder {
	return New(append([]Option{WithFormat(cfg.Format)}, opts...)...)
}
