// Package config loads tool configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the environment-derived configuration. Flags on individual
// commands override these values.
type Config struct {
	// BaseURL must resolve to an allow-listed origin; see internal/origin.
	BaseURL string `env:"GUESTBOOK_API_URL" envDefault:"https://necdetsanli-guestbook.sanlinecdet97.workers.dev"`

	// Token, when set, takes precedence over the session store. Useful for
	// scripted moderation.
	Token string `env:"GUESTBOOK_ADMIN_TOKEN"`

	// SessionFile overrides the default session token location.
	SessionFile string `env:"GUESTBOOK_SESSION_FILE"`

	// HistoryDB overrides the default moderation history database location.
	HistoryDB string `env:"GUESTBOOK_HISTORY_DB"`

	// Timeout bounds each API request.
	Timeout time.Duration `env:"GUESTBOOK_TIMEOUT" envDefault:"10s"`

	LogLevel  string `env:"GUESTBOOK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"GUESTBOOK_LOG_FORMAT" envDefault:"console"`
}

// Load parses the GUESTBOOK_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
