// Package config loads levelsolver settings from a JSON-with-comments file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tailscale/hujson"
)

// FileName is the project config file looked up in the working directory.
const FileName = ".levelsolver.json"

// Output formats.
const (
	FormatTokens = "tokens"
	FormatMoves  = "moves"
	FormatJSON   = "json"
)

var (
	ErrFileNotFound = errors.New("config file not found")
	ErrInvalid      = errors.New("invalid config")
	ErrFormat       = errors.New("format must be one of tokens, moves, json")
	ErrWorkers      = errors.New("workers must be positive")
	ErrInterval     = errors.New("interval_ms must not be negative")
	ErrLogLevel     = errors.New("log_level must be one of debug, info, warn, error")
)

// Config holds all settings.
type Config struct {
	Format     string `json:"format"`
	Workers    int    `json:"workers"`
	LogLevel   string `json:"log_level"`
	IntervalMS int    `json:"interval_ms"`

	// Source is the file the config was loaded from, empty for defaults.
	Source string `json:"-"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Format:   FormatTokens,
		Workers:  runtime.NumCPU(),
		LogLevel: "warn",
	}
}

// Load returns the defaults overlaid with the config file. An explicit path
// must exist; otherwise FileName in workDir is used if present.
func Load(workDir, path string) (Config, error) {
	mustExist := path != ""
	if !mustExist {
		path = FileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Default(), nil
		}
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", ErrInvalid, path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes a JSONC document over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	switch c.Format {
	case FormatTokens, FormatMoves, FormatJSON:
	default:
		return fmt.Errorf("%w, got %q", ErrFormat, c.Format)
	}
	if c.Workers <= 0 {
		return ErrWorkers
	}
	if c.IntervalMS < 0 {
		return ErrInterval
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level of LogLevel, or warn if it is invalid.
func (c Config) Level() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return l
}

// ParseLevel parses a log level name.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w, got %q", ErrLogLevel, s)
	}
}
