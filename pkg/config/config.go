// Package config loads settings for the nlox driver from YAML or TOML files,
// an optional .env file and NLOX_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Output modes of the driver.
const (
	ModeTokens = "tokens"
	ModeAST    = "ast"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvMode      = "NLOX_MODE"
	EnvLogLevel  = "NLOX_LOG_LEVEL"
	EnvLogFormat = "NLOX_LOG_FORMAT"
	EnvNoColor   = "NLOX_NO_COLOR"
)

var (
	ErrUnknownFormat = errors.New("unknown config file format")
	ErrInvalid       = errors.New("invalid config")
)

// Config holds the complete driver configuration.
type Config struct {
	Mode  string    `yaml:"mode" toml:"mode"`
	Color bool      `yaml:"color" toml:"color"`
	Log   LogConfig `yaml:"log" toml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // text or json
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mode:  ModeTokens,
		Color: true,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads a configuration file on top of Default. The format is chosen by
// extension: .yaml/.yml or .toml.
func Load(path string) (Config, error) {
	cfg := Default()
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	default:
		return cfg, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// LoadDotEnv loads variables from a .env file into the process environment
// without overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with NLOX_* environment variables.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvMode); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(EnvNoColor); v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvNoColor, v)
		}
		cfg.Color = !noColor
	}
	return cfg.Validate()
}

// Validate rejects unknown modes, levels and formats.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeTokens, ModeAST:
	default:
		return fmt.Errorf("%w: mode %q (want %s or %s)", ErrInvalid, c.Mode, ModeTokens, ModeAST)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
