package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"logview/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		URL     string        `yaml:"url" mapstructure:"url" validate:"required,url"`
		Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`
	} `yaml:"server" mapstructure:"server"`
	Query struct {
		Limit int `yaml:"limit" mapstructure:"limit" validate:"gt=0"`
	} `yaml:"query" mapstructure:"query"`
	Polling struct {
		Enabled  bool          `yaml:"enabled" mapstructure:"enabled"`
		Interval time.Duration `yaml:"interval" mapstructure:"interval" validate:"gt=0"`
	} `yaml:"polling" mapstructure:"polling"`
	Logging struct {
		Level  string `yaml:"level" mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic"`
		Format string `yaml:"format" mapstructure:"format" validate:"omitempty,oneof=console json"`
		File   string `yaml:"file" mapstructure:"file"`
	} `yaml:"logging" mapstructure:"logging"`
	Telemetry struct {
		DSN         string `yaml:"dsn" mapstructure:"dsn"`
		Environment string `yaml:"environment" mapstructure:"environment"`
	} `yaml:"telemetry" mapstructure:"telemetry"`
	Version int `yaml:"version" mapstructure:"version"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Version: 1,
	}

	cfg.Server.URL = DefaultServerURL
	cfg.Server.Timeout = DefaultServerTimeout

	cfg.Query.Limit = DefaultLimit

	cfg.Polling.Enabled = false
	cfg.Polling.Interval = DefaultPollInterval

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	return cfg
}

// Load reads logview.yaml from the working directory and applies .env and LOGVIEW_* overrides
func Load() (*Config, error) {
	return LoadFile(ConfigFile)
}

// LoadFile reads the given config file; a missing file yields the defaults plus env overrides
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, err)
	}

	cfg := DefaultConfig()

	v := newViper(cfg)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}
	case os.IsNotExist(err):
	default:
		return nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// newViper creates a viper instance seeded with defaults so env overrides resolve for every key
func newViper(cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.url", cfg.Server.URL)
	v.SetDefault("server.timeout", cfg.Server.Timeout)
	v.SetDefault("query.limit", cfg.Query.Limit)
	v.SetDefault("polling.enabled", cfg.Polling.Enabled)
	v.SetDefault("polling.interval", cfg.Polling.Interval)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("telemetry.dsn", cfg.Telemetry.DSN)
	v.SetDefault("telemetry.environment", cfg.Telemetry.Environment)
	v.SetDefault("version", cfg.Version)

	return v
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
