// Package dataset serves windows of the virtual user collection. Nothing is
// stored: every page is synthesized from its offsets on demand, so the same
// (offset, limit, total) triple always produces the same page.
package dataset

import (
	"context"
	"fmt"
	"runtime"

	"github.com/conneroisu/vlistdata/internal/synth"
	"golang.org/x/sync/errgroup"
)

// MaxPageSize caps the number of users one Page call returns.
const MaxPageSize = 200

// fillChunk is the number of users each Fill worker synthesizes at a time.
const fillChunk = 4096

// Page is one window of the virtual collection.
type Page struct {
	Items   []synth.User `json:"items" yaml:"items"`
	Total   int          `json:"total" yaml:"total"`
	HasMore bool         `json:"hasMore" yaml:"hasMore"`
}

// Window returns the users at zero-based positions [offset, offset+limit)
// of a collection of total users. limit is capped at MaxPageSize and a
// negative offset is treated as 0. A window starting at or past total is
// empty, not an error.
func Window(offset, limit, total int) Page {
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	end := min(offset+limit, total)
	if end <= offset {
		return Page{Items: []synth.User{}, Total: total, HasMore: false}
	}

	items := make([]synth.User, end-offset)
	for i := range items {
		items[i] = synth.Synthesize(offset + i + 1)
	}

	return Page{
		Items:   items,
		Total:   total,
		HasMore: end < total,
	}
}

// ByID returns the user with the given 1-based id, or false when id is
// outside [1, total].
func ByID(id, total int) (synth.User, bool) {
	if id < 1 || id > total {
		return synth.User{}, false
	}
	return synth.Synthesize(id), true
}

// Fill synthesizes users offset+1 .. offset+len(dst) into dst, splitting the
// work across up to workers goroutines. It is meant for bulk export where a
// range is far larger than a page. The result is identical to filling dst
// sequentially.
func Fill(ctx context.Context, dst []synth.User, offset, workers int) error {
	if offset < 0 {
		return fmt.Errorf("negative offset %d", offset)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(dst); start += fillChunk {
		chunk := dst[start:min(start+fillChunk, len(dst))]
		first := offset + start + 1

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := range chunk {
				chunk[i] = synth.Synthesize(first + i)
			}
			return nil
		})
	}

	return g.Wait()
}
