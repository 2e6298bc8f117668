package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/vlistdata/internal/version"
)

func newVersionCmd() *cobra.Command {
	var (
		format string
		short  bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display the version, commit, build time, Go version and platform.

Examples:
  vlistdata version
  vlistdata version --short
  vlistdata version --format json`,
		Args: cobra.NoArgs,
		// Version output never depends on configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersion(cmd.OutOrStdout(), format, short)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&short, "short", false, "Show short version only")
	AddFlagValidation(cmd.Flags(), "format", ValidateChoice("text", "json", "yaml"))

	return cmd
}

func runVersion(out io.Writer, format string, short bool) error {
	if short {
		_, err := fmt.Fprintln(out, version.GetShortVersion())
		return err
	}

	info := version.Get()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(info)
	default:
		_, err := fmt.Fprintln(out, info.String())
		return err
	}
}
