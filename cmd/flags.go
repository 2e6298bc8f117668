package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagBindings maps command-line flags to configuration keys. A flag only
// overrides the configuration when it is set explicitly.
var flagBindings = map[string]string{
	"host":             "server.host",
	"port":             "server.port",
	"env":              "server.environment",
	"allowed-origins":  "server.allowed_origins",
	"shutdown-timeout": "server.shutdown_timeout",
	"log-level":        "log.level",
	"log-format":       "log.format",
}

// bindFlags binds every known flag of flags into v.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		key, ok := flagBindings[f.Name]
		if !ok || err != nil {
			return
		}
		err = v.BindPFlag(key, f)
	})
	return err
}

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(flags *pflag.FlagSet, flagName string, validator func(string) error) {
	flag := flags.Lookup(flagName)
	if flag == nil {
		return
	}

	flag.Value = &validatingValue{
		Value:     flag.Value,
		validator: validator,
	}
}

type validatingValue struct {
	pflag.Value
	validator func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.Value.Set(val)
}

// ValidatePort accepts 0 (any free port) through 65535.
func ValidatePort(portStr string) error {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port number: %s", portStr)
	}

	if port < 0 || port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", port)
	}

	return nil
}

// ValidateChoice returns a validator accepting only the given values.
func ValidateChoice(choices ...string) func(string) error {
	return func(val string) error {
		for _, c := range choices {
			if val == c {
				return nil
			}
		}
		return fmt.Errorf("must be one of %s, got %q", strings.Join(choices, ", "), val)
	}
}

// ValidateNonNegative rejects negative integers.
func ValidateNonNegative(val string) error {
	n, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("invalid number: %s", val)
	}
	if n < 0 {
		return fmt.Errorf("must not be negative, got %d", n)
	}
	return nil
}
