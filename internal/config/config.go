// Package config loads routeplan CLI settings with priority
// environment > file > defaults, and builds the process logger from them.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Environment variable names read by Load.
const (
	EnvMapPath       = "ROUTEPLAN_MAP"
	EnvMaxExpansions = "ROUTEPLAN_MAX_EXPANSIONS"
	EnvTimeout       = "ROUTEPLAN_TIMEOUT"
	EnvLogLevel      = "ROUTEPLAN_LOG_LEVEL"
	EnvLogFormat     = "ROUTEPLAN_LOG_FORMAT"
)

// Config is the full CLI configuration.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after creation.
type Config struct {
	// Map selects the road map to plan on.
	Map MapConfig `json:"map" yaml:"map"`

	// Search bounds a single query.
	Search SearchConfig `json:"search" yaml:"search"`

	// Logging configures the slog handler.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// MapConfig selects the road map.
type MapConfig struct {
	// Path to a YAML/JSON map document. Empty means the embedded demo map.
	Path string `json:"path" yaml:"path"`
}

// SearchConfig bounds a single query.
type SearchConfig struct {
	MaxExpansions int           `json:"max_expansions" yaml:"max_expansions"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Default returns the built-in configuration: demo map, no expansion
// limit, a 30s timeout, and warn-level text logs.
func Default() Config {
	return Config{
		Map: MapConfig{Path: ""},
		Search: SearchConfig{
			MaxExpansions: 0,
			Timeout:       30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load returns defaults overlaid with the file at path (if path is non-empty)
// and then with ROUTEPLAN_* environment variables.
//
// Errors:
//   - a read or parse error if path is given but missing, unreadable or malformed.
//   - ErrInvalid (wrapped) for an unparsable environment value or if the
//     merged configuration fails Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv(EnvMapPath); v != "" {
		cfg.Map.Path = v
	}
	if v := os.Getenv(EnvMaxExpansions); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, EnvMaxExpansions, v)
		}
		cfg.Search.MaxExpansions = i
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a duration", ErrInvalid, EnvTimeout, v)
		}
		cfg.Search.Timeout = d
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}

	return nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: search.max_expansions must be >= 0", ErrInvalid)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%w: search.timeout must be >= 0", ErrInvalid)
	}
	if _, err := c.Logging.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format must be text or json, got %q", ErrInvalid, c.Logging.Format)
	}

	return nil
}

func (l LoggingConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: logging.level %q", ErrInvalid, l.Level)
	}

	return lvl, nil
}

// NewLogger builds a logger writing to w according to l.
// Call Validate first; invalid settings fall back to info-level text.
func (l LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	lvl, err := l.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
