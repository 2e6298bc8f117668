// Package config loads the service configuration with Viper. Values come
// from command-line flags, VLISTDATA_* environment variables, an optional
// .vlistdata.yml file and built-in defaults, in that order of precedence.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/conneroisu/vlistdata/internal/errors"
	"github.com/conneroisu/vlistdata/internal/validation"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "VLISTDATA"

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".vlistdata.yml"

type Config struct {
	Server ServerConfig `mapstructure:"server" yaml:"server"`
	Data   DataConfig   `mapstructure:"data" yaml:"data"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host" yaml:"host"`
	Port            int           `mapstructure:"port" yaml:"port"`
	Environment     string        `mapstructure:"environment" yaml:"environment"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

type DataConfig struct {
	DefaultLimit int `mapstructure:"default_limit" yaml:"default_limit"`
	MaxLimit     int `mapstructure:"max_limit" yaml:"max_limit"`
	DefaultTotal int `mapstructure:"default_total" yaml:"default_total"`
	MaxTotal     int `mapstructure:"max_total" yaml:"max_total"`
	MaxDelayMS   int `mapstructure:"max_delay_ms" yaml:"max_delay_ms"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// SetDefaults registers every key with its default so that environment
// overrides are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := validation.DefaultLimits()

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("data.default_limit", d.DefaultLimit)
	v.SetDefault("data.max_limit", d.MaxLimit)
	v.SetDefault("data.default_total", d.DefaultTotal)
	v.SetDefault("data.max_total", d.MaxTotal)
	v.SetDefault("data.max_delay_ms", int(d.MaxDelay/time.Millisecond))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads and validates the configuration held by v. Warnings are
// dropped; use LoadWithDetails to report them.
func LoadFrom(v *viper.Viper) (*Config, error) {
	config, _, err := LoadWithDetails(v)
	return config, err
}

// LoadWithDetails reads and validates the configuration held by v and also
// returns the validation result. The result is nil when decoding failed.
func LoadWithDetails(v *viper.Viper) (*Config, *ValidationResult, error) {
	SetDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, nil, errors.NewConfigError(errors.ErrCodeConfigInvalid, "failed to decode configuration", err)
	}

	// Environment values arrive as a single comma separated string.
	config.Server.AllowedOrigins = splitOrigins(config.Server.AllowedOrigins)
	config.Log.Level = strings.ToLower(strings.TrimSpace(config.Log.Level))
	config.Log.Format = strings.ToLower(strings.TrimSpace(config.Log.Format))

	result := ValidateConfigWithDetails(&config)
	if result.HasErrors() {
		return nil, result, errors.NewConfigError(errors.ErrCodeConfigInvalid, "invalid configuration", &result.Errors[0])
	}

	return &config, result, nil
}

func splitOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Limits converts the data section to request clamping bounds.
func (c *Config) Limits() validation.Limits {
	return validation.Limits{
		DefaultLimit: c.Data.DefaultLimit,
		MaxLimit:     c.Data.MaxLimit,
		DefaultTotal: c.Data.DefaultTotal,
		MaxTotal:     c.Data.MaxTotal,
		MaxDelay:     time.Duration(c.Data.MaxDelayMS) * time.Millisecond,
	}
}
