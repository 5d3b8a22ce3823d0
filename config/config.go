// Package config loads the CLI configuration from TRACKSIDE_* environment
// variables. Command line flags take precedence over these values.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/Nydauron/trackside/app"
)

type Config struct {
	Lanes     string `env:"TRACKSIDE_LANES" envDefault:"6"`
	Attempts  string `env:"TRACKSIDE_ATTEMPTS" envDefault:"6"`
	WindLimit string `env:"TRACKSIDE_WIND_LIMIT" envDefault:"2.0"`
	ByPlace   string `env:"TRACKSIDE_BY_PLACE" envDefault:"3"`

	Format          string        `env:"TRACKSIDE_FORMAT" envDefault:"yaml"`
	LogFile         string        `env:"TRACKSIDE_LOG_FILE" envDefault:"trackside.log"`
	Debug           bool          `env:"TRACKSIDE_DEBUG"`
	RefreshInterval time.Duration `env:"TRACKSIDE_REFRESH_INTERVAL" envDefault:"50ms"`
	Lang            string        `env:"TRACKSIDE_LANG" envDefault:"en"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RefreshInterval <= 0 {
		return Config{}, fmt.Errorf("parse env: TRACKSIDE_REFRESH_INTERVAL must be positive, got %s", cfg.RefreshInterval)
	}
	return cfg, nil
}

// FormDefaults returns the setup form prefill described by cfg.
func (c Config) FormDefaults() app.FormDefaults {
	d := app.DefaultFormDefaults()
	d.Lanes = c.Lanes
	d.Attempts = c.Attempts
	d.WindLimit = c.WindLimit
	d.ByPlace = c.ByPlace
	return d
}

// LanguageTag is the language user facing messages are shown in. Unknown
// tags fall back to English.
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return language.English
	}
	return tag
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
