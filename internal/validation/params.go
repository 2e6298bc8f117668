package validation

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Bounds describes how one numeric query parameter is read: missing or
// non-numeric input falls back to Default, numeric input is clamped into
// [Min, Max].
type Bounds struct {
	Default int
	Min     int
	Max     int
}

// Clamp constrains v to [b.Min, b.Max].
func (b Bounds) Clamp(v int) int {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// ClampInt parses raw with b. It never fails.
func ClampInt(raw string, b Bounds) int {
	v, ok := leadingInt(raw)
	if !ok {
		return b.Default
	}
	return b.Clamp(v)
}

// leadingInt reads an optionally signed run of decimal digits from the start
// of s, ignoring surrounding whitespace and anything after the digits, so
// "50", " 50 " and "50.9" all read as 50. Values too large for int saturate.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// on ErrRange strconv has already saturated v to the nearest bound
	return v, true
}

// Limits holds the bounds applied to the user endpoints.
type Limits struct {
	DefaultLimit int
	MaxLimit     int
	DefaultTotal int
	MaxTotal     int
	MaxDelay     time.Duration
}

// DefaultLimits mirrors the documented public defaults.
func DefaultLimits() Limits {
	return Limits{
		DefaultLimit: 50,
		MaxLimit:     200,
		DefaultTotal: 1_000_000,
		MaxTotal:     10_000_000,
		MaxDelay:     5 * time.Second,
	}
}

// Bounds of each query parameter under l. Delay is in milliseconds.
func (l Limits) OffsetBounds() Bounds { return Bounds{Default: 0, Min: 0, Max: l.MaxTotal} }
func (l Limits) LimitBounds() Bounds  { return Bounds{Default: l.DefaultLimit, Min: 1, Max: l.MaxLimit} }
func (l Limits) TotalBounds() Bounds  { return Bounds{Default: l.DefaultTotal, Min: 0, Max: l.MaxTotal} }
func (l Limits) DelayBounds() Bounds {
	return Bounds{Default: 0, Min: 0, Max: int(l.MaxDelay / time.Millisecond)}
}

// ListParams are the clamped inputs of a list request.
type ListParams struct {
	Offset int
	Limit  int
	Total  int
	Delay  time.Duration
}

// DetailParams are the clamped inputs of a single-user request.
type DetailParams struct {
	Total int
	Delay time.Duration
}

// ParseListParams reads offset, limit, total and delay (milliseconds)
// from q.
func ParseListParams(q url.Values, l Limits) ListParams {
	return ListParams{
		Offset: ClampInt(q.Get("offset"), l.OffsetBounds()),
		Limit:  ClampInt(q.Get("limit"), l.LimitBounds()),
		Total:  ClampInt(q.Get("total"), l.TotalBounds()),
		Delay:  time.Duration(ClampInt(q.Get("delay"), l.DelayBounds())) * time.Millisecond,
	}
}

// ParseDetailParams reads total and delay (milliseconds) from q.
func ParseDetailParams(q url.Values, l Limits) DetailParams {
	return DetailParams{
		Total: ClampInt(q.Get("total"), l.TotalBounds()),
		Delay: time.Duration(ClampInt(q.Get("delay"), l.DelayBounds())) * time.Millisecond,
	}
}

// ParseUserID reads a path segment as a user id. Unlike query parameters an
// id is never defaulted: anything but a plain decimal integer is rejected.
func ParseUserID(segment string) (int, bool) {
	if segment == "" || strings.ContainsAny(segment, "+- ") {
		return 0, false
	}
	id, err := strconv.Atoi(segment)
	if err != nil {
		return 0, false
	}
	return id, true
}
