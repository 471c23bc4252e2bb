package config

import (
	"path/filepath"
	"time"
)

// Config holds runtime settings for the QuizBoard CLI.
//
// Fields:
//   - ServerBaseURL: base address of the remote question-board REST API.
//   - StoragePath: SQLite file holding the persisted session.
//   - DefaultTokenTTL: token lifetime assumed when the login response and the
//     token itself carry no expiry.
//   - LogLevel: slog level name for diagnostics written to stderr.
type Config struct {
	ServerBaseURL   string
	StoragePath     string
	DefaultTokenTTL time.Duration
	LogLevel        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://cae-bookstore.herokuapp.com"
	c.StoragePath = filepath.Join("data", "quizboard.db")
	c.DefaultTokenTTL = time.Hour
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. args excludes the program name.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
