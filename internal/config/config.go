// Package config loads runtime settings from defaults, .env, a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Display modes.
const (
	DisplayText   = "text"
	DisplayScreen = "screen"
)

type Config struct {
	TickInterval time.Duration   `yaml:"tick_interval"`
	Display      string          `yaml:"display"` // "text" or "screen"
	Symbols      SymbolsConfig   `yaml:"symbols"`
	Log          LogConfig       `yaml:"log"`
	Telemetry    TelemetryConfig `yaml:"telemetry"`
}

// SymbolsConfig controls how face cells are printed.
type SymbolsConfig struct {
	On  string `yaml:"on"`
	Off string `yaml:"off"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Path  string `yaml:"path"`  // empty means stderr (discarded in screen mode)
}

type TelemetryConfig struct {
	Enabled        bool   `yaml:"enabled"`
	ServiceName    string `yaml:"service_name"`
	ServiceVersion string `yaml:"service_version"`
}

// Load builds the configuration. A missing config file or .env file is not an error.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv lets environment variables override the config file.
func applyEnv(cfg *Config) error {
	if env := os.Getenv("TAMAGOTCHI_TICK_INTERVAL"); env != "" {
		d, err := time.ParseDuration(env)
		if err != nil {
			return fmt.Errorf("TAMAGOTCHI_TICK_INTERVAL: %w", err)
		}
		cfg.TickInterval = d
	}
	if env := os.Getenv("TAMAGOTCHI_DISPLAY"); env != "" {
		cfg.Display = env
	}
	if env := os.Getenv("TAMAGOTCHI_LOG_LEVEL"); env != "" {
		cfg.Log.Level = env
	}
	if env := os.Getenv("TAMAGOTCHI_LOG_PATH"); env != "" {
		cfg.Log.Path = env
	}
	if env := os.Getenv("TAMAGOTCHI_TELEMETRY"); env != "" {
		enabled, err := strconv.ParseBool(env)
		if err != nil {
			return fmt.Errorf("TAMAGOTCHI_TELEMETRY: %w", err)
		}
		cfg.Telemetry.Enabled = enabled
	}
	return nil
}

func defaults() *Config {
	return &Config{
		TickInterval: 5 * time.Second,
		Display:      DisplayText,
		Symbols: SymbolsConfig{
			On:  "1",
			Off: "0",
		},
		Log: LogConfig{
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			ServiceName:    "tamagotchi",
			ServiceVersion: "0.1.0",
		},
	}
}

func validate(cfg *Config) error {
	if cfg.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s", cfg.TickInterval)
	}
	if cfg.Display != DisplayText && cfg.Display != DisplayScreen {
		return fmt.Errorf("display must be %q or %q, got %q", DisplayText, DisplayScreen, cfg.Display)
	}
	if cfg.Symbols.On == "" || cfg.Symbols.Off == "" {
		return errors.New("symbols.on and symbols.off must not be empty")
	}
	if cfg.Symbols.On == cfg.Symbols.Off {
		return fmt.Errorf("symbols.on and symbols.off must differ, both are %q", cfg.Symbols.On)
	}
	if cfg.Telemetry.Enabled && cfg.Telemetry.ServiceName == "" {
		return errors.New("telemetry.service_name must not be empty when telemetry is enabled")
	}
	if _, err := cfg.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return level, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
