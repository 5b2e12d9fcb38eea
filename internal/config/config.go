// Package config loads journeyviz settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alexanderramin/journeyviz/internal/domain"
	"github.com/alexanderramin/journeyviz/internal/editor"
	"github.com/alexanderramin/journeyviz/internal/layout"
	"github.com/alexanderramin/journeyviz/internal/scene"
	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config holds every tunable. Geometry is in terminal cells.
type Config struct {
	Stages        []string      `env:"JOURNEYVIZ_STAGES" envDefault:"Awareness,Consideration,Decision" envSeparator:","`
	HeaderHeight  int           `env:"JOURNEYVIZ_HEADER_HEIGHT" envDefault:"2"`
	Padding       int           `env:"JOURNEYVIZ_PADDING" envDefault:"1"`
	CardWidth     int           `env:"JOURNEYVIZ_CARD_WIDTH" envDefault:"14"`
	CardHeight    int           `env:"JOURNEYVIZ_CARD_HEIGHT" envDefault:"3"`
	Animation     time.Duration `env:"JOURNEYVIZ_ANIMATION" envDefault:"200ms"`
	FrameInterval time.Duration `env:"JOURNEYVIZ_FRAME_INTERVAL" envDefault:"16ms"`
	SidebarWidth  int           `env:"JOURNEYVIZ_SIDEBAR_WIDTH" envDefault:"22"`
	TemplateDir   string        `env:"JOURNEYVIZ_TEMPLATES"`
	LogFile       string        `env:"JOURNEYVIZ_LOG_FILE"`
	LogLevel      string        `env:"JOURNEYVIZ_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Stages = cleanStages(cfg.Stages)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Stages:        append([]string(nil), domain.DefaultStageLabels...),
		HeaderHeight:  2,
		Padding:       1,
		CardWidth:     14,
		CardHeight:    3,
		Animation:     200 * time.Millisecond,
		FrameInterval: 16 * time.Millisecond,
		SidebarWidth:  22,
		LogLevel:      "info",
	}
}

// Validate checks ranges. A card needs room for its border and one row of
// text, and the delete glyph must fit beside the icon.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Stages, validation.Required, validation.Length(1, 9)),
		validation.Field(&c.HeaderHeight, validation.Min(1)),
		validation.Field(&c.Padding, validation.Min(0)),
		validation.Field(&c.CardWidth, validation.Min(8)),
		validation.Field(&c.CardHeight, validation.Min(3)),
		validation.Field(&c.Animation, validation.Min(time.Duration(0))),
		validation.Field(&c.FrameInterval, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.SidebarWidth, validation.Min(12)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}

// Level maps LogLevel to a slog level.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Editor converts the settings into an editor session configuration.
func (c Config) Editor() editor.Config {
	return editor.Config{
		Stages: domain.NewStages(c.Stages),
		Metrics: layout.Metrics{
			HeaderHeight: float64(c.HeaderHeight),
			Padding:      float64(c.Padding),
			CardWidth:    float64(c.CardWidth),
			CardHeight:   float64(c.CardHeight),
		},
		Scene:         scene.DefaultOptions(),
		EnterDuration: c.Animation,
		ExitDuration:  c.Animation,
	}
}

func cleanStages(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, s := range domain.NewStages(labels) {
		out = append(out, s.Label)
	}
	return out
}
