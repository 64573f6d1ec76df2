package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

const (
	BackendTerminal = "terminal"
	BackendWindow   = "window"
)

// Config is the full application configuration. Grid size and spring
// constants are compiled in and have no keys here.
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Drag    DragConfig    `mapstructure:"drag" yaml:"drag"`
}

type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

type DisplayConfig struct {
	Backend    string `mapstructure:"backend" yaml:"backend"`
	Title      string `mapstructure:"title" yaml:"title"`
	Background string `mapstructure:"background" yaml:"background"`
	Dot        string `mapstructure:"dot" yaml:"dot"`
	Hot        string `mapstructure:"hot" yaml:"hot"`
	Heat       bool   `mapstructure:"heat" yaml:"heat"`
}

type DragConfig struct {
	// Release is "keep" or "fling".
	Release string `mapstructure:"release" yaml:"release"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.service_name", "dotsheet")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	v.SetDefault("display.backend", BackendTerminal)
	v.SetDefault("display.title", "Dot Matrix Sheet")
	v.SetDefault("display.background", "#000000")
	v.SetDefault("display.dot", "#CBAACB")
	v.SetDefault("display.hot", "#FF8C00")
	v.SetDefault("display.heat", true)

	v.SetDefault("drag.release", "keep")
}

// NewDefaultConfig returns the configuration with nothing but defaults.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Load unmarshals v into a Config and validates it. Defaults must already
// be registered on v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Display.Backend = strings.ToLower(strings.TrimSpace(cfg.Display.Backend))
	cfg.Drag.Release = strings.ToLower(strings.TrimSpace(cfg.Drag.Release))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that viper cannot type-check on its own.
func (c *Config) Validate() error {
	switch c.Display.Backend {
	case BackendTerminal, BackendWindow:
	default:
		return fmt.Errorf("%w: display.backend must be %q or %q, got %q",
			ErrInvalid, BackendTerminal, BackendWindow, c.Display.Backend)
	}
	for key, hex := range map[string]string{
		"display.background": c.Display.Background,
		"display.dot":        c.Display.Dot,
		"display.hot":        c.Display.Hot,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
		}
	}
	switch c.Drag.Release {
	case "keep", "fling":
	default:
		return fmt.Errorf("%w: drag.release must be keep or fling, got %q", ErrInvalid, c.Drag.Release)
	}
	switch c.Logger.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logger.format must be json or console, got %q", ErrInvalid, c.Logger.Format)
	}
	return nil
}
