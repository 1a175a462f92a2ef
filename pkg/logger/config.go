package logger

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/firstengineering/website/pkg/environment"
)

// Config is the environment driven logger setup.
type Config struct {
	Env            string `env:"APP_ENV" envDefault:"development"`
	Level          string `env:"LOG_LEVEL"` // debug | info | warn | error; empty keeps the environment default
	File           string `env:"LOG_FILE"`  // rotated copy of every record, disabled when empty
	FileMaxSizeMB  int    `env:"LOG_FILE_MAX_SIZE_MB" envDefault:"50"`
	FileMaxBackups int    `env:"LOG_FILE_MAX_BACKUPS" envDefault:"5"`
	FileMaxAgeDays int    `env:"LOG_FILE_MAX_AGE_DAYS" envDefault:"28"`
}

// Options translates cfg into logger options for service.
func (cfg Config) Options(service string) ([]Option, error) {
	opts := []Option{WithEnvironment(environment.Parse(cfg.Env), service)}

	if cfg.Level != "" {
		level, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLevel(level))
	}

	if cfg.File != "" {
		opts = append(opts, WithFile(cfg.File, cfg.FileMaxSizeMB, cfg.FileMaxBackups, cfg.FileMaxAgeDays))
	}

	return opts, nil
}

// ParseLevel parses a level name such as "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return level, nil
}
