package validation

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClampInt(t *testing.T) {
	b := Bounds{Default: 50, Min: 1, Max: 200}

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"missing", "", 50},
		{"plain", "75", 75},
		{"min edge", "1", 1},
		{"max edge", "200", 200},
		{"below min", "0", 1},
		{"negative", "-30", 1},
		{"above max", "10000", 200},
		{"non numeric", "abc", 50},
		{"only sign", "-", 50},
		{"trailing junk", "120abc", 120},
		{"decimal", "50.9", 50},
		{"whitespace", "  60 ", 60},
		{"explicit plus", "+70", 70},
		{"overflow", "99999999999999999999999", 200},
		{"negative overflow", "-99999999999999999999999", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampInt(tt.raw, b))
		})
	}
}

func TestParseListParams(t *testing.T) {
	l := DefaultLimits()

	tests := []struct {
		name  string
		query string
		want  ListParams
	}{
		{
			name:  "defaults",
			query: "",
			want:  ListParams{Offset: 0, Limit: 50, Total: 1_000_000, Delay: 0},
		},
		{
			name:  "explicit",
			query: "offset=990&limit=50&total=1000&delay=250",
			want:  ListParams{Offset: 990, Limit: 50, Total: 1000, Delay: 250 * time.Millisecond},
		},
		{
			name:  "clamped",
			query: "offset=-5&limit=10000&total=99999999&delay=60000",
			want:  ListParams{Offset: 0, Limit: 200, Total: 10_000_000, Delay: 5 * time.Second},
		},
		{
			name:  "garbage falls back",
			query: "offset=x&limit=y&total=z&delay=soon",
			want:  ListParams{Offset: 0, Limit: 50, Total: 1_000_000, Delay: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ParseListParams(q, l))
		})
	}
}

func TestParseDetailParams(t *testing.T) {
	q := url.Values{"total": {"500"}, "delay": {"-1"}}
	assert.Equal(t, DetailParams{Total: 500, Delay: 0}, ParseDetailParams(q, DefaultLimits()))

	assert.Equal(t, DetailParams{Total: 1_000_000}, ParseDetailParams(url.Values{}, DefaultLimits()))
}

func TestParseUserID(t *testing.T) {
	tests := []struct {
		segment string
		want    int
		wantOK  bool
	}{
		{"1", 1, true},
		{"1000000", 1_000_000, true},
		{"0", 0, true},
		{"", 0, false},
		{"-3", 0, false},
		{"+3", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"1.5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			id, ok := ParseUserID(tt.segment)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, id)
		})
	}
}
