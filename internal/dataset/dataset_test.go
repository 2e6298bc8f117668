package dataset

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/conneroisu/vlistdata/internal/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name        string
		offset      int
		limit       int
		total       int
		wantLen     int
		wantFirstID int
		wantHasMore bool
	}{
		{"first page", 0, 50, 1000, 50, 1, true},
		{"interior page", 100, 25, 1000, 25, 101, true},
		{"tail page", 990, 50, 1000, 10, 991, false},
		{"exact end", 950, 50, 1000, 50, 951, false},
		{"offset at total", 1000, 50, 1000, 0, 0, false},
		{"offset past total", 5000, 50, 1000, 0, 0, false},
		{"limit clamped", 0, 10_000, 1_000_000, MaxPageSize, 1, true},
		{"negative offset", -20, 5, 100, 5, 1, true},
		{"zero limit", 10, 0, 100, 0, 0, false},
		{"empty collection", 0, 50, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Window(tt.offset, tt.limit, tt.total)

			require.Len(t, page.Items, tt.wantLen)
			assert.NotNil(t, page.Items)
			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, tt.wantHasMore, page.HasMore)

			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirstID, page.Items[0].ID)
				for i, u := range page.Items {
					assert.Equal(t, tt.wantFirstID+i, u.ID)
				}
			}
		})
	}
}

func TestWindowEmptyEncodesAsArray(t *testing.T) {
	data, err := json.Marshal(Window(2000, 50, 1000))
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"total":1000,"hasMore":false}`, string(data))
}

func TestWindowIdempotent(t *testing.T) {
	a, err := json.Marshal(Window(4321, 77, 1_000_000))
	require.NoError(t, err)
	b, err := json.Marshal(Window(4321, 77, 1_000_000))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestByID(t *testing.T) {
	tests := []struct {
		name   string
		id     int
		total  int
		wantOK bool
	}{
		{"zero", 0, 1000, false},
		{"negative", -1, 1000, false},
		{"first", 1, 1000, true},
		{"last", 1000, 1000, true},
		{"past last", 1001, 1000, false},
		{"single user", 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, ok := ByID(tt.id, tt.total)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, synth.Synthesize(tt.id), u)
			} else {
				assert.Zero(t, u)
			}
		})
	}
}

func TestByIDMatchesWindow(t *testing.T) {
	page := Window(300, 20, 1000)
	for _, item := range page.Items {
		u, ok := ByID(item.ID, 1000)
		require.True(t, ok)
		assert.Equal(t, item, u)
	}
}

func TestFill(t *testing.T) {
	const offset = 12_345
	dst := make([]synth.User, 3*fillChunk+17)

	err := Fill(context.Background(), dst, offset, 4)
	require.NoError(t, err)

	for i, u := range dst {
		require.Equal(t, synth.Synthesize(offset+i+1), u)
	}
}

func TestFillCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Fill(ctx, make([]synth.User, fillChunk*2), 0, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFillRejectsNegativeOffset(t *testing.T) {
	err := Fill(context.Background(), make([]synth.User, 1), -1, 1)
	assert.Error(t, err)
}
