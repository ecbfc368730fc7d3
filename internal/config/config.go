// Package config loads creator settings from the environment
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/character-creator/internal/errors"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds runtime settings. Nothing is required; the zero environment gives
// a quiet text logger.
type Config struct {
	LogLevel  string `env:"CREATOR_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"CREATOR_LOG_FORMAT" envDefault:"text"`
}

// Validate checks the level and format values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.Fieldf("LogLevel", "must be one of: debug, info, warn, error (got %q)", c.LogLevel)
	}
	errors.ValidateEnum("LogFormat", strings.ToLower(c.LogFormat), []string{LogFormatText, LogFormatJSON}, vb)

	return vb.Build()
}

// Load reads an optional .env file from the working directory and then the
// process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load .env file")
	}

	return FromEnv()
}

// FromEnv parses the process environment only
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// NewLogger builds the slog logger described by the config
func NewLogger(cfg *Config, w io.Writer) (*slog.Logger, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	level, _ := parseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.LogFormat, LogFormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
