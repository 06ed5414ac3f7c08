package yatgrender

import (
	"time"

	"github.com/YaCodeDev/GoYaTgBotAPI/config"
	"github.com/YaCodeDev/GoYaTgBotAPI/yalogger"
	"github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"
)

const (
	EnvMode      = "YATG_RENDER_MODE"
	EnvPreset    = "YATG_RENDER_PRESET"
	EnvTemplates = "YATG_RENDER_TEMPLATES"
	EnvValidate  = "YATG_RENDER_VALIDATE"
	EnvCacheTTL  = "YATG_RENDER_CACHE_TTL"
)

const (
	templateEntrySeparator = ";"
	templateKVSeparator    = "="
)

type Config struct {
	Mode      Mode
	Preset    Preset
	Templates map[yatgtypes.EntityType]string
	Validate  bool
	// CacheTTL is the ttl for NewCached; unused by NewFromConfig.
	CacheTTL time.Duration
}

// ConfigFromEnv reads the YATG_RENDER_* variables. Templates are given as
// `type=template` entries separated by `;`, e.g.
//
//	YATG_RENDER_TEMPLATES='bold=<strong>{text}</strong>;underline=<u>{text}</u>'
func ConfigFromEnv(log yalogger.Logger) Config {
	entrySeparator := templateEntrySeparator
	kvSeparator := templateKVSeparator

	return Config{
		Mode:   config.GetEnv(EnvMode, Strict, false, log),
		Preset: config.GetEnv(EnvPreset, PresetHTML, false, log),
		Templates: config.GetEnvMap[yatgtypes.EntityType, string](
			EnvTemplates,
			nil,
			false,
			&entrySeparator,
			&kvSeparator,
			log,
		),
		Validate: config.GetEnv(EnvValidate, false, false, log),
		CacheTTL: config.GetEnv(EnvCacheTTL, time.Hour, false, log),
	}
}

// NewFromConfig is New with cfg applied before opts.
func NewFromConfig(cfg Config, opts ...Option) *Renderer {
	base := []Option{
		WithMode(cfg.Mode),
		WithPreset(cfg.Preset),
		WithTemplates(cfg.Templates),
	}

	if cfg.Validate {
		base = append(base, WithValidation())
	}

	return New(append(base, opts...)...)
}
