package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(buf *bytes.Buffer, level LogLevel) *ServiceLogger {
	return NewLogger(&LoggerConfig{Level: level, Format: "json", Output: buf})
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, LevelWarn)
	ctx := context.Background()

	l.Debug(ctx, "debug")
	l.Info(ctx, "info")
	l.Warn(ctx, nil, "warn")
	l.Error(ctx, errors.New("boom"), "error")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "warn", lines[0]["msg"])
	assert.Equal(t, "error", lines[1]["msg"])
	assert.Equal(t, "boom", lines[1]["error"])
}

func TestFieldsAndComponent(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, LevelDebug).
		WithComponent("server").
		With("port", 8080)

	l.Info(context.Background(), "started", "host", "localhost", 42, "dropped", "dangling")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "server", lines[0]["component"])
	assert.Equal(t, float64(8080), lines[0]["port"])
	assert.Equal(t, "localhost", lines[0]["host"])
	assert.NotContains(t, lines[0], "dangling")
}

func TestRequestIDFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, LevelInfo)

	ctx := ContextWithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestIDFrom(ctx))
	assert.Empty(t, RequestIDFrom(context.Background()))

	l.Info(ctx, "handled")
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "req-123", lines[0]["request_id"])
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&LoggerConfig{Level: LevelInfo, Format: "text", Output: &buf})

	l.Info(context.Background(), "hello", "n", 3)
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "n=3")
}

func TestNop(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() {
		l.Error(context.Background(), errors.New("x"), "ignored")
	})
}

func TestPerfLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, LevelInfo)

	op := StartOperation(l, "export")
	op.End(context.Background(), "count", 10)
	StartOperation(l, "export").EndWithError(context.Background(), errors.New("disk full"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "export", lines[0]["operation"])
	assert.Equal(t, float64(10), lines[0]["count"])
	assert.Contains(t, lines[0], "duration_ms")
	assert.Equal(t, "disk full", lines[1]["error"])
}
