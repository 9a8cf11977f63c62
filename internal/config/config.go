// Package config reads settings for the plotduel binaries from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvAddr     = "PLOTDUEL_ADDR"
	EnvLogLevel = "PLOTDUEL_LOG_LEVEL"

	DefaultAddr = ":8080"
)

type Config struct {
	Addr     string
	LogLevel slog.Level
}

// Load reads the given .env files (default ".env") into the environment and
// builds a Config. Missing files are skipped; variables already set in the
// environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{Addr: GetEnv(EnvAddr, DefaultAddr), LogLevel: slog.LevelInfo}
	if v := os.Getenv(EnvLogLevel); v != "" {
		lvl, err := ParseLevel(v)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

// GetEnv returns the variable's value, or def when it is unset or empty.
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseLevel maps debug, info, warn and error (any case) to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q", s)
}

// NewLogger builds the text logger the binaries write to stderr.
func (c Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel}))
}
