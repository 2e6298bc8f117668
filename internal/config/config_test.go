package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/vlistdata/internal/errors"
	"github.com/conneroisu/vlistdata/internal/validation"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Empty(t, cfg.Server.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, 50, cfg.Data.DefaultLimit)
	assert.Equal(t, 200, cfg.Data.MaxLimit)
	assert.Equal(t, 1_000_000, cfg.Data.DefaultTotal)
	assert.Equal(t, 10_000_000, cfg.Data.MaxTotal)
	assert.Equal(t, 5000, cfg.Data.MaxDelayMS)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	assert.Equal(t, validation.DefaultLimits(), cfg.Limits())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(v *viper.Viper)
		expectError bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "explicit values",
			setup: func(v *viper.Viper) {
				v.Set("server.port", 3000)
				v.Set("server.host", "0.0.0.0")
				v.Set("data.max_limit", 150)
				v.Set("log.level", "DEBUG")
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3000, cfg.Server.Port)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 150, cfg.Limits().MaxLimit)
				assert.Equal(t, "debug", cfg.Log.Level)
			},
		},
		{
			name: "comma separated origins",
			setup: func(v *viper.Viper) {
				v.Set("server.allowed_origins", []string{"https://a.example.com, https://b.example.com"})
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
			},
		},
		{
			name:        "port not a number",
			setup:       func(v *viper.Viper) { v.Set("server.port", "invalid_port") },
			expectError: true,
		},
		{
			name:        "port out of range",
			setup:       func(v *viper.Viper) { v.Set("server.port", 70000) },
			expectError: true,
		},
		{
			name:        "dangerous host",
			setup:       func(v *viper.Viper) { v.Set("server.host", "localhost; rm -rf /") },
			expectError: true,
		},
		{
			name:        "default limit above max",
			setup:       func(v *viper.Viper) { v.Set("data.default_limit", 500) },
			expectError: true,
		},
		{
			name:        "max limit above page size",
			setup:       func(v *viper.Viper) { v.Set("data.max_limit", 500) },
			expectError: true,
		},
		{
			name:        "default total above max",
			setup:       func(v *viper.Viper) { v.Set("data.max_total", 10) },
			expectError: true,
		},
		{
			name:        "bad origin scheme",
			setup:       func(v *viper.Viper) { v.Set("server.allowed_origins", []string{"ftp://files.example.com"}) },
			expectError: true,
		},
		{
			name:        "unknown log format",
			setup:       func(v *viper.Viper) { v.Set("log.format", "xml") },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			tt.setup(v)

			cfg, err := LoadFrom(v)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.ErrorIs(t, err, errors.NewConfigError(errors.ErrCodeConfigInvalid, "", nil))
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadWithEnvironment(t *testing.T) {
	t.Setenv("VLISTDATA_SERVER_PORT", "9999")
	t.Setenv("VLISTDATA_DATA_DEFAULT_TOTAL", "1000")
	t.Setenv("VLISTDATA_SERVER_ALLOWED_ORIGINS", "https://a.example.com,app.example.com")

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 1000, cfg.Data.DefaultTotal)
	assert.Equal(t, []string{"https://a.example.com", "app.example.com"}, cfg.Server.AllowedOrigins)
}

func TestLoadWithDetails(t *testing.T) {
	t.Run("returns warnings with the config", func(t *testing.T) {
		v := viper.New()
		v.Set("server.environment", "production")

		cfg, result, err := LoadWithDetails(v)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		require.True(t, result.HasWarnings())
		assert.Equal(t, "server.allowed_origins", result.Warnings[0].Field)
	})

	t.Run("returns errors alongside the failure", func(t *testing.T) {
		v := viper.New()
		v.Set("data.default_limit", 0)

		cfg, result, err := LoadWithDetails(v)
		require.Error(t, err)
		assert.Nil(t, cfg)
		require.NotNil(t, result)
		assert.True(t, result.HasErrors())
	})

	t.Run("defaults carry no warnings", func(t *testing.T) {
		_, result, err := LoadWithDetails(viper.New())
		require.NoError(t, err)
		assert.False(t, result.HasWarnings())
	})
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	content := `server:
  port: 9090
  shutdown_timeout: 3s
data:
  default_limit: 20
  max_delay_ms: 250
log:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	// Flags and explicit sets win over the file.
	v.Set("server.port", 7070)

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 20, cfg.Data.DefaultLimit)
	assert.Equal(t, 250*time.Millisecond, cfg.Limits().MaxDelay)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestGlobalLoad(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("server.port", 4242)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4242, cfg.Server.Port)
}

func TestValidateConfigWithDetails(t *testing.T) {
	t.Run("collects every error", func(t *testing.T) {
		cfg := &Config{
			Server: ServerConfig{Port: -1, Host: "a|b", Environment: "staging"},
			Data:   DataConfig{DefaultLimit: 0, MaxLimit: 0, DefaultTotal: -1, MaxTotal: -1, MaxDelayMS: -5},
			Log:    LogConfig{Level: "loud", Format: "xml"},
		}

		result := ValidateConfigWithDetails(cfg)
		fields := make(map[string]bool)
		for _, e := range result.Errors {
			fields[e.Field] = true
		}

		for _, f := range []string{
			"server.port", "server.host", "server.environment",
			"data.max_limit", "data.default_limit", "data.max_total",
			"data.default_total", "data.max_delay_ms", "log.level", "log.format",
		} {
			assert.True(t, fields[f], "missing error for %s", f)
		}
		assert.Contains(t, result.String(), "Validation Errors")
	})

	t.Run("warnings do not fail", func(t *testing.T) {
		cfg := &Config{
			Server: ServerConfig{Host: "0.0.0.0", Port: 80, Environment: "production"},
			Data:   DataConfig{DefaultLimit: 1, MaxLimit: 1},
			Log:    LogConfig{Level: "info", Format: "text"},
		}

		result := ValidateConfigWithDetails(cfg)
		assert.False(t, result.HasErrors())
		assert.True(t, result.HasWarnings())
		assert.Contains(t, result.String(), "Validation Warnings")
	})
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "server.port", Message: "bad"}
	assert.Equal(t, "validation error in server.port: bad", err.Error())
}
