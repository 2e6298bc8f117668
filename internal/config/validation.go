package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/conneroisu/vlistdata/internal/dataset"
	"github.com/conneroisu/vlistdata/internal/logging"
	"github.com/conneroisu/vlistdata/internal/validation"
)

// ValidationError represents a configuration validation error with suggestions
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	write := func(header string, items []ValidationError) {
		if len(items) == 0 {
			return
		}
		builder.WriteString(header + "\n")
		for _, item := range items {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", item.Field, item.Message))
			for _, suggestion := range item.Suggestions {
				builder.WriteString(fmt.Sprintf("    💡 %s\n", suggestion))
			}
		}
	}

	write("❌ Validation Errors:", vr.Errors)
	write("⚠️  Validation Warnings:", vr.Warnings)

	return builder.String()
}

func (vr *ValidationResult) addError(field string, value interface{}, msg string, suggestions ...string) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Value: value, Message: msg, Suggestions: suggestions})
}

func (vr *ValidationResult) addWarning(field string, value interface{}, msg string, suggestions ...string) {
	vr.Warnings = append(vr.Warnings, ValidationError{Field: field, Value: value, Message: msg, Suggestions: suggestions})
}

// ValidateConfigWithDetails checks every section and collects all problems
// rather than stopping at the first.
func ValidateConfigWithDetails(config *Config) *ValidationResult {
	result := &ValidationResult{}

	validateServer(&config.Server, result)
	validateData(&config.Data, result)
	validateLog(&config.Log, result)

	return result
}

func validateServer(s *ServerConfig, result *ValidationResult) {
	// 0 lets the OS pick a port.
	if s.Port < 0 || s.Port > 65535 {
		result.addError("server.port", s.Port, fmt.Sprintf("port %d is not in valid range 0-65535", s.Port),
			"Use a port such as 8080")
	}

	if err := validation.ValidateHost(s.Host); err != nil {
		result.addError("server.host", s.Host, err.Error(), "Use localhost, 127.0.0.1 or 0.0.0.0")
	} else if ip := net.ParseIP(s.Host); ip != nil && ip.IsUnspecified() && s.Environment == "development" {
		result.addWarning("server.host", s.Host, "listening on all interfaces in development")
	}

	switch s.Environment {
	case "development", "production", "test":
	default:
		result.addError("server.environment", s.Environment, "unknown environment",
			"Use development, production or test")
	}

	for _, origin := range s.AllowedOrigins {
		if origin == "*" {
			continue
		}
		if err := validateOriginEntry(origin); err != nil {
			result.addError("server.allowed_origins", origin, err.Error(),
				"Origins look like https://app.example.com")
		}
	}
	if len(s.AllowedOrigins) == 0 && s.Environment == "production" {
		result.addWarning("server.allowed_origins", nil, "any origin may call the API",
			"List the frontends that should be allowed")
	}

	if s.ShutdownTimeout < 0 {
		result.addError("server.shutdown_timeout", s.ShutdownTimeout, "shutdown timeout cannot be negative")
	}
}

// validateOriginEntry accepts a full http(s) origin or a bare host.
func validateOriginEntry(origin string) error {
	if strings.Contains(origin, "://") {
		return validation.ValidateOrigin(origin, []string{origin})
	}
	if origin == "" || strings.Contains(origin, "/") {
		return fmt.Errorf("origin %q is neither an origin nor a host", origin)
	}
	return validation.ValidateHost(origin)
}

func validateData(d *DataConfig, result *ValidationResult) {
	if d.MaxLimit < 1 || d.MaxLimit > dataset.MaxPageSize {
		result.addError("data.max_limit", d.MaxLimit,
			fmt.Sprintf("max_limit must be between 1 and %d", dataset.MaxPageSize))
	}
	if d.DefaultLimit < 1 || d.DefaultLimit > d.MaxLimit {
		result.addError("data.default_limit", d.DefaultLimit,
			fmt.Sprintf("default_limit must be between 1 and max_limit (%d)", d.MaxLimit))
	}
	if d.MaxTotal < 0 {
		result.addError("data.max_total", d.MaxTotal, "max_total cannot be negative")
	}
	if d.DefaultTotal < 0 || d.DefaultTotal > d.MaxTotal {
		result.addError("data.default_total", d.DefaultTotal,
			fmt.Sprintf("default_total must be between 0 and max_total (%d)", d.MaxTotal))
	}
	if d.MaxDelayMS < 0 {
		result.addError("data.max_delay_ms", d.MaxDelayMS, "max_delay_ms cannot be negative")
	}
}

func validateLog(l *LogConfig, result *ValidationResult) {
	if _, err := logging.ParseLevel(l.Level); err != nil {
		result.addError("log.level", l.Level, err.Error(), "Use debug, info, warn or error")
	}
	if l.Format != "text" && l.Format != "json" {
		result.addError("log.format", l.Format, "unknown log format", "Use text or json")
	}
}
