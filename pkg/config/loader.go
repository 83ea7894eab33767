package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every environment variable the tool reads.
const Prefix = "NUMREGEX_"

// Config holds the command line defaults. Flags override these values.
type Config struct {
	// Locale is the BCP 47 identifier or registered profile name to use.
	Locale string `env:"LOCALE" envDefault:"en-US"`
	// ProfilesFile is an optional YAML document with custom profiles.
	ProfilesFile string `env:"PROFILES_FILE"`
	// CacheSize bounds the number of compiled patterns kept in memory.
	CacheSize int `env:"CACHE_SIZE" envDefault:"128"`

	// LogLevel and LogFormat override the Env logging preset when set.
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"`
	Env       string `env:"ENV" envDefault:"development"`
}

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Locale) == "" {
		return fmt.Errorf("%w: empty locale", ErrInvalidConfig)
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("%w: cache size %d must be positive", ErrInvalidConfig, c.CacheSize)
	}
	if c.LogLevel != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
		}
	}
	switch c.LogFormat {
	case "", "json", "text":
	default:
		return fmt.Errorf("%w: log format %q must be json or text", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// LoadEnv loads .env files into the process environment without overriding
// variables that are already set. With no paths it loads ./.env when present.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		// The default file is optional.
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

// Load reads the optional .env files and parses NUMREGEX_* variables into a
// validated Config.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//		return err
//	}
//	log := logger.New(logger.WithEnvironment(cfg.Env, "numregex"))
func Load(paths ...string) (Config, error) {
	if err := LoadEnv(paths...); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad(paths ...string) Config {
	cfg, err := Load(paths...)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
