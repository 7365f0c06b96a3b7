package theme

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the engine settings.
type Config struct {
	ThemesRoot string `yaml:"themes_root"`
	Theme      string `yaml:"theme"`
	Cache      bool   `yaml:"cache"`
	CachePath  string `yaml:"cache_path"`
	Extension  string `yaml:"extension"`
	BaseURL    string `yaml:"base_url"`
	Addr       string `yaml:"addr"`
	LogLevel   string `yaml:"log_level"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		ThemesRoot: "themes",
		Theme:      "default",
		Extension:  DefaultExtension,
		Addr:       ":8080",
		LogLevel:   "info",
	}
}

// LoadConfig reads a YAML config file over DefaultConfig. A missing file is
// not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts the config to engine options.
func (c Config) Options(logger *slog.Logger) []Option {
	opts := []Option{
		WithExtension(c.Extension),
		WithBaseURL(c.BaseURL),
		WithLogger(logger),
	}
	if c.Cache {
		opts = append(opts, WithCache(c.CachePath))
	}
	return opts
}

// Level returns the slog level named by LogLevel, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadParams reads a YAML mapping of template params.
func LoadParams(path string) (Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read params: %w", err)
	}
	p := Params{}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse params %s: %w", path, err)
	}
	return p, nil
}

// ParseSetArgs parses key=value pairs into Params.
func ParseSetArgs(args []string) (Params, error) {
	p := Params{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf(`invalid parameter "%s", expected key=value`, arg)
		}
		p[key] = value
	}
	return p, nil
}
