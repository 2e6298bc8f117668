package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/vlistdata/internal/dataset"
	"github.com/conneroisu/vlistdata/internal/logging"
	"github.com/conneroisu/vlistdata/internal/synth"
)

// exportBatchSize is the number of users synthesized before writing.
var exportBatchSize = 64 * 1024

type exportOptions struct {
	offset  int
	count   int
	total   int
	workers int
	format  string
}

func newExportCmd(a *app) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:     "export",
		Aliases: []string{"e"},
		Short:   "Write a range of users to stdout",
		Long: `Write users offset+1 .. offset+count to stdout. The range is cut at
total; unlike the HTTP API it is not limited to one page.

Formats:
  jsonl   one JSON object per line (default)
  json    a single JSON array
  yaml    a YAML sequence

Examples:
  vlistdata export --count 1000 > users.jsonl
  vlistdata export --offset 5000 --count 50 --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("total") {
				opts.total = a.cfg.Data.DefaultTotal
			}
			if opts.total > a.cfg.Data.MaxTotal {
				opts.total = a.cfg.Data.MaxTotal
			}

			op := logging.StartOperation(a.logger, "export")
			n, err := runExport(cmd.Context(), cmd.OutOrStdout(), opts)
			if err != nil {
				op.EndWithError(cmd.Context(), err)
				return err
			}
			op.End(cmd.Context(), "count", n, "format", opts.format)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.offset, "offset", 0, "Zero-based position of the first user")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 100, "Number of users to write")
	cmd.Flags().IntVar(&opts.total, "total", 0, "Size of the collection (default from data.default_total)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "Synthesis goroutines (default GOMAXPROCS)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "jsonl", "Output format (jsonl, json, yaml)")

	for _, name := range []string{"offset", "count", "total", "workers"} {
		AddFlagValidation(cmd.Flags(), name, ValidateNonNegative)
	}
	AddFlagValidation(cmd.Flags(), "format", ValidateChoice("jsonl", "json", "yaml"))

	return cmd
}

// runExport writes the requested range and returns how many users it wrote.
func runExport(ctx context.Context, out io.Writer, opts exportOptions) (int, error) {
	n := 0
	if opts.offset < opts.total {
		n = min(opts.count, opts.total-opts.offset)
	}

	w := bufio.NewWriter(out)
	enc := newExportEncoder(w, opts.format)

	if err := enc.begin(); err != nil {
		return 0, err
	}

	batch := make([]synth.User, min(n, exportBatchSize))
	for start := 0; start < n; start += len(batch) {
		chunk := batch[:min(len(batch), n-start)]
		if err := dataset.Fill(ctx, chunk, opts.offset+start, opts.workers); err != nil {
			return start, fmt.Errorf("synthesize users: %w", err)
		}
		if err := enc.write(chunk); err != nil {
			return start, fmt.Errorf("write users: %w", err)
		}
	}

	if err := enc.end(n == 0); err != nil {
		return n, err
	}
	return n, w.Flush()
}

type exportEncoder struct {
	w      *bufio.Writer
	format string
	first  bool
}

func newExportEncoder(w *bufio.Writer, format string) *exportEncoder {
	return &exportEncoder{w: w, format: format, first: true}
}

func (e *exportEncoder) begin() error {
	if e.format == "json" {
		return e.w.WriteByte('[')
	}
	return nil
}

func (e *exportEncoder) write(users []synth.User) error {
	switch e.format {
	case "yaml":
		// Consecutive top-level block sequences form one sequence.
		b, err := yaml.Marshal(users)
		if err != nil {
			return err
		}
		_, err = e.w.Write(b)
		return err
	case "json":
		for _, u := range users {
			if !e.first {
				if err := e.w.WriteByte(','); err != nil {
					return err
				}
			}
			e.first = false
			b, err := json.Marshal(u)
			if err != nil {
				return err
			}
			if _, err := e.w.Write(b); err != nil {
				return err
			}
		}
		return nil
	default:
		enc := json.NewEncoder(e.w)
		for _, u := range users {
			if err := enc.Encode(u); err != nil {
				return err
			}
		}
		return nil
	}
}

func (e *exportEncoder) end(empty bool) error {
	switch e.format {
	case "json":
		_, err := e.w.WriteString("]\n")
		return err
	case "yaml":
		if empty {
			_, err := e.w.WriteString("[]\n")
			return err
		}
	}
	return nil
}
