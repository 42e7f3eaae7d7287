// Package config handles configuration loading for yfapi.
// It supports YAML config files with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. YFAPI_API_PORT.
const EnvPrefix = "YFAPI"

// Config represents the complete application configuration.
type Config struct {
	API      APIConfig      `mapstructure:"api"      yaml:"api"`
	Provider ProviderConfig `mapstructure:"provider" yaml:"provider"`
	Logging  LoggingConfig  `mapstructure:"logging"  yaml:"logging"`
}

// APIConfig holds HTTP server settings.
type APIConfig struct {
	Host               string   `mapstructure:"host"                 yaml:"host"`
	Port               int      `mapstructure:"port"                 yaml:"port"`
	CORSOrigins        []string `mapstructure:"cors_origins"         yaml:"cors_origins"`
	ShutdownTimeoutSec int      `mapstructure:"shutdown_timeout_sec" yaml:"shutdown_timeout_sec"`
}

// Addr returns host:port for the listener.
func (c APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ShutdownTimeout is the grace period for in-flight requests on shutdown.
func (c APIConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}

// ProviderConfig holds upstream (Yahoo Finance) client settings. Empty URLs
// mean the provider's built-in endpoints.
type ProviderConfig struct {
	TimeoutSec int    `mapstructure:"timeout_sec" yaml:"timeout_sec"`
	UserAgent  string `mapstructure:"user_agent"  yaml:"user_agent"`
	Query1URL  string `mapstructure:"query1_url"  yaml:"query1_url"`
	Query2URL  string `mapstructure:"query2_url"  yaml:"query2_url"`
	FinanceURL string `mapstructure:"finance_url" yaml:"finance_url"`
	CookieURL  string `mapstructure:"cookie_url"  yaml:"cookie_url"`
	FeedURL    string `mapstructure:"feed_url"    yaml:"feed_url"`
}

// Timeout is the per-request upstream timeout.
func (c ProviderConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

var (
	logLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
	logFormats = []string{"text", "json"}
)

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.yfapi/config.yaml (home directory)
//  3. /etc/yfapi/config.yaml (system)
//
// Environment variables override config file values.
// Format: YFAPI_<SECTION>_<KEY>, e.g., YFAPI_PROVIDER_TIMEOUT_SEC
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".yfapi"))
	v.AddConfigPath("/etc/yfapi")

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	overrideFromEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file or env var is set.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8000)
	v.SetDefault("api.cors_origins", []string{"*"})
	v.SetDefault("api.shutdown_timeout_sec", 10)

	// Provider defaults
	v.SetDefault("provider.timeout_sec", 30)
	v.SetDefault("provider.user_agent", "")
	v.SetDefault("provider.query1_url", "")
	v.SetDefault("provider.query2_url", "")
	v.SetDefault("provider.finance_url", "")
	v.SetDefault("provider.cookie_url", "")
	v.SetDefault("provider.feed_url", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// overrideFromEnv reads list-valued keys that AutomaticEnv cannot split.
func overrideFromEnv(cfg *Config) {
	if origins := os.Getenv(EnvPrefix + "_API_CORS_ORIGINS"); origins != "" {
		cfg.API.CORSOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.API.CORSOrigins = append(cfg.API.CORSOrigins, o)
			}
		}
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.API.Port <= 0 || c.API.Port > 65535 {
		return fmt.Errorf("config: api.port %d out of range", c.API.Port)
	}
	if c.API.ShutdownTimeoutSec < 0 {
		return fmt.Errorf("config: api.shutdown_timeout_sec must not be negative")
	}
	if c.Provider.TimeoutSec <= 0 {
		return fmt.Errorf("config: provider.timeout_sec must be positive, got %d", c.Provider.TimeoutSec)
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("config: logging.level %q not one of %s", c.Logging.Level, strings.Join(logLevels, ", "))
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Logging.Format)) {
		return fmt.Errorf("config: logging.format %q not one of %s", c.Logging.Format, strings.Join(logFormats, ", "))
	}
	return nil
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
