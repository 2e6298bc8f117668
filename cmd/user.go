package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/vlistdata/internal/dataset"
	"github.com/conneroisu/vlistdata/internal/errors"
	"github.com/conneroisu/vlistdata/internal/synth"
	"github.com/conneroisu/vlistdata/internal/validation"
)

func newUserCmd(a *app) *cobra.Command {
	var (
		format string
		total  int
	)

	cmd := &cobra.Command{
		Use:     "user <id>",
		Aliases: []string{"u"},
		Short:   "Print one synthetic user",
		Long: `Print the user with the given 1-based id. The id must lie in [1, total].

Examples:
  vlistdata user 1
  vlistdata user 1500 --format yaml
  vlistdata user 7 --total 5        # fails: id outside the collection`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("total") {
				total = a.cfg.Data.DefaultTotal
			}
			total = min(total, a.cfg.Data.MaxTotal)
			return runUser(cmd.OutOrStdout(), args[0], total, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, yaml, text)")
	cmd.Flags().IntVar(&total, "total", 0, "Size of the collection (default from data.default_total)")
	AddFlagValidation(cmd.Flags(), "format", ValidateChoice("json", "yaml", "text"))
	AddFlagValidation(cmd.Flags(), "total", ValidateNonNegative)

	return cmd
}

func runUser(out io.Writer, arg string, total int, format string) error {
	id, ok := validation.ParseUserID(arg)
	if !ok {
		return errors.ErrUserNotFound(arg, total)
	}
	user, found := dataset.ByID(id, total)
	if !found {
		return errors.ErrUserNotFound(arg, total)
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(user)
	case "text":
		return writeUserText(out, user)
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(user)
	}
}

func writeUserText(out io.Writer, u synth.User) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"ID", strconv.Itoa(u.ID)},
		{"Name", u.FirstName + " " + u.LastName},
		{"Initials", u.Initials},
		{"Email", u.Email},
		{"Color", u.Color},
		{"Role", u.Role},
		{"Department", u.Department},
		{"Company", u.Company},
		{"Location", u.City + ", " + u.Country},
		{"Status", string(u.Status)},
		{"Joined", strconv.Itoa(u.JoinYear)},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1])
	}
	return tw.Flush()
}
