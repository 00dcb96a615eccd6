package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures liftoff's runtime settings.
type Config struct {
	Path           string
	APIURL         string
	Locale         string
	Timezone       string
	Location       *time.Location
	RequestTimeout time.Duration
	LogFile        string
	LogLevel       slog.Level
}

const (
	defaultConfigPath = "~/.config/liftoff/config.toml"
	defaultLogFile    = "~/.local/state/liftoff/liftoff.log"
	defaultAPIURL     = "https://api.spacexdata.com"
	defaultLocale     = "en-US"
	defaultTimezone   = "Local"
)

type fileConfig struct {
	APIURL         string `toml:"api_url"`
	Locale         string `toml:"locale"`
	Timezone       string `toml:"timezone"`
	RequestTimeout string `toml:"request_timeout"`
	LogFile        string `toml:"log_file"`
	LogLevel       string `toml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:   defaultAPIURL,
		Locale:   defaultLocale,
		Timezone: defaultTimezone,
		Location: time.Local,
		LogFile:  mustExpand(defaultLogFile),
		LogLevel: slog.LevelInfo,
	}
}

// Load locates and parses the liftoff config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	cfg.Path = resolved

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.apply(raw); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) apply(raw fileConfig) error {
	if v := strings.TrimSpace(raw.APIURL); v != "" {
		c.APIURL = v
	}
	if v := strings.TrimSpace(raw.Locale); v != "" {
		c.Locale = v
	}

	if v := strings.TrimSpace(raw.Timezone); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return fmt.Errorf("timezone %q: %w", v, err)
		}
		c.Timezone = v
		c.Location = loc
	}

	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("request_timeout %q: %w", v, err)
		}
		if d < 0 {
			return fmt.Errorf("request_timeout %q: must not be negative", v)
		}
		c.RequestTimeout = d
	}

	if v := strings.TrimSpace(raw.LogFile); v != "" {
		expanded, err := expandPath(v)
		if err != nil {
			return fmt.Errorf("log_file: %w", err)
		}
		c.LogFile = expanded
	}

	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("log_level %q: %w", v, err)
		}
		c.LogLevel = level
	}
	return nil
}

// LogDir returns the directory holding the log file.
func (c Config) LogDir() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return filepath.Dir(mustExpand(defaultLogFile))
	}
	return filepath.Dir(c.LogFile)
}

// DefaultPath returns the expanded default config location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
