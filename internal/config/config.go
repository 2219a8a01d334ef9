// Package config holds the settings for a game session that can come from the
// environment. Command-line flags are applied on top of these by the caller.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/dekarrin/bork/internal/game"
)

// MinWidth is the narrowest output width that is accepted.
const MinWidth = game.MinWidth

// Config is the complete configuration of a game session. The zero value is not
// valid; use Load to get one with defaults applied.
type Config struct {
	// World is the path to the BKW file to load the world from. If empty, the
	// built-in world is used.
	World string `env:"BORK_WORLD"`

	// Direct forces reading input directly instead of with readline.
	Direct bool `env:"BORK_DIRECT" envDefault:"false"`

	// Width is the column to wrap output at.
	Width int `env:"BORK_WIDTH" envDefault:"80"`

	// LogLevel is the minimum level of log messages that are written. It is
	// one of "debug", "info", "warn", or "error".
	LogLevel string `env:"BORK_LOG_LEVEL" envDefault:"warn"`

	// LogFile is where logs are written. If empty, they go to stderr.
	LogFile string `env:"BORK_LOG_FILE"`

	// Debug enables the DEBUG command.
	Debug bool `env:"BORK_DEBUG" envDefault:"false"`

	// PlayerName is the name of the player character.
	PlayerName string `env:"BORK_PLAYER_NAME" envDefault:"Player"`
}

// Load reads a Config from environment variables, applying defaults for any
// that are not set. It does not validate the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate returns an error if any setting in the Config is invalid.
func (cfg Config) Validate() error {
	if cfg.Width < MinWidth {
		return fmt.Errorf("width must be at least %d but is %d", MinWidth, cfg.Width)
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.PlayerName) == "" {
		return fmt.Errorf("player name cannot be blank")
	}
	return nil
}

// Level gives LogLevel as an slog.Level. Case is ignored.
func (cfg Config) Level() (slog.Level, error) {
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q; must be one of debug, info, warn, or error", cfg.LogLevel)
	}
}
