package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
)

const (
	EnvPrefix          = "RACEBOARD_"
	DefaultDatabaseURL = "postgres://localhost:5432/raceboard?sslmode=disable"
)

type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
}

type DatabaseConfig struct {
	URL      string `koanf:"url" validate:"required"`
	MaxConns int32  `koanf:"max_conns" validate:"gte=0"`
}

type LogConfig struct {
	Level      string `koanf:"level" validate:"oneof=debug info warn error"`
	File       string `koanf:"file"`
	Console    bool   `koanf:"console"`
	MaxSizeMB  int    `koanf:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `koanf:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `koanf:"max_age_days" validate:"gte=0"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		Database: DatabaseConfig{URL: DefaultDatabaseURL},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 7,
			MaxAgeDays: 14,
		},
	}
}

var validate = validator.New()

// Load builds the configuration from, lowest precedence first: defaults,
// an optional .env file, the optional TOML file at path, DATABASE_URL and
// RACEBOARD_-prefixed environment variables where "__" separates levels
// (RACEBOARD_DATABASE__URL sets database.url).
func Load(path string) (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI).
	_ = godotenv.Load()

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), TOML()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		if err := k.Set("database.url", dsn); err != nil {
			return nil, fmt.Errorf("config: DATABASE_URL: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, EnvPrefix), "__", "."))
	}), nil); err != nil {
		return nil, fmt.Errorf("config: env overlay: %w", err)
	}

	cfg := Defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Database.URL) == "" {
		c.Database.URL = DefaultDatabaseURL
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	parsed, err := url.Parse(c.Database.URL)
	if err != nil {
		return fmt.Errorf("config: invalid database url (%q): %w", c.Database.URL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid database url (%q): missing scheme or host", c.Database.URL)
	}
	return nil
}
