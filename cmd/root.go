// Package cmd provides the vlistdata command-line interface.
//
// Configuration is read from several sources, highest precedence first:
//
//  1. Command-line flags (--port, --log-level, ...)
//  2. VLISTDATA_<SECTION>_<OPTION> environment variables
//  3. The config file named by --config or VLISTDATA_CONFIG_FILE, or
//     .vlistdata.yml in the working directory
//  4. Built-in defaults
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/vlistdata/internal/config"
	"github.com/conneroisu/vlistdata/internal/errors"
	"github.com/conneroisu/vlistdata/internal/logging"
)

// app carries the state shared by one invocation of the command tree.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  logging.Logger
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the CLI with os.Args under ctx.
func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "vlistdata",
		Short: "Deterministic synthetic user data for virtual list demos",
		Long: `vlistdata serves an unlimited, reproducible collection of synthetic users.
Every user is computed from its id alone, so any page of a million-row list
can be fetched instantly and always looks the same.

Quick Start:
  vlistdata serve                 Start the HTTP API on localhost:8080
  vlistdata user 42               Print user 42
  vlistdata export --count 1000   Write users 1..1000 as JSON lines
  vlistdata version               Show build information`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "",
		"config file (default is .vlistdata.yml, can also use VLISTDATA_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	AddFlagValidation(rootCmd.PersistentFlags(), "log-format", ValidateChoice("text", "json"))

	rootCmd.AddCommand(
		newServeCmd(a),
		newUserCmd(a),
		newExportCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// init resolves configuration for the command about to run and builds the
// logger from it.
func (a *app) init(cmd *cobra.Command) error {
	configPath, err := a.readConfigFile()
	if err != nil {
		return errors.NewEnhancedError(
			"Failed to read configuration file",
			err,
			errors.ConfigurationError(err.Error(), configPath),
		)
	}

	a.v.SetEnvPrefix(config.EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := bindFlags(a.v, cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg, result, err := config.LoadWithDetails(a.v)
	if err != nil {
		if result != nil && result.HasErrors() {
			fmt.Fprint(cmd.ErrOrStderr(), result.String())
		}
		return errors.NewEnhancedError(
			"Failed to load configuration",
			err,
			errors.ConfigurationError(err.Error(), configPath),
		)
	}
	a.cfg = cfg

	level, _ := logging.ParseLevel(cfg.Log.Level)
	a.logger = logging.NewLogger(&logging.LoggerConfig{
		Level:  level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})

	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug(cmd.Context(), "Using config file", "path", used)
	}

	if result.HasWarnings() {
		for _, w := range result.Warnings {
			a.logger.Warn(cmd.Context(), nil, "Configuration warning",
				"field", w.Field,
				"warning", w.Message,
				"suggestions", strings.Join(w.Suggestions, "; "))
		}
	}

	return nil
}

// readConfigFile loads the explicit config file, or .vlistdata.yml when
// present. It returns the path it looked at for error messages.
func (a *app) readConfigFile() (string, error) {
	explicit := a.cfgFile
	if explicit == "" {
		explicit = os.Getenv(config.EnvPrefix + "_CONFIG_FILE")
	}

	if explicit != "" {
		a.v.SetConfigFile(explicit)
		return explicit, a.v.ReadInConfig()
	}

	a.v.AddConfigPath(".")
	a.v.SetConfigType("yaml")
	a.v.SetConfigName(strings.TrimSuffix(config.DefaultFileName, ".yml"))

	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return config.DefaultFileName, nil
		}
		return config.DefaultFileName, err
	}
	return config.DefaultFileName, nil
}
