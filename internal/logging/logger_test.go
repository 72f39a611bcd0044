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

func newBufferLogger(level LogLevel, format string) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewLogger(&LoggerConfig{Level: level, Format: format, Output: &buf}), &buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, "text")
	ctx := context.Background()

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	assert.Empty(t, buf.String())

	logger.Warn(ctx, errors.New("boom"), "warn message")
	assert.Contains(t, buf.String(), "warn message")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestJSONFormatAndFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, "json")

	logger.WithComponent("catalog").With("kind", "css").Info(context.Background(), "reloaded", "entries", 58)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "reloaded", record["msg"])
	assert.Equal(t, "catalog", record["component"])
	assert.Equal(t, "css", record["kind"])
	assert.EqualValues(t, 58, record["entries"])
}

func TestWithDoesNotMutateParent(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, "text")
	_ = logger.With("request_id", "abc")

	logger.Info(context.Background(), "plain")
	assert.NotContains(t, buf.String(), "request_id")
}

func TestWithRequestID(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, "text")
	reqLogger := WithRequestID(logger, "req-1")

	assert.Equal(t, "req-1", reqLogger.RequestID)
	reqLogger.Info(context.Background(), "handled")
	assert.Contains(t, buf.String(), "request_id=req-1")
}

func TestContextRoundTrip(t *testing.T) {
	logger, _ := newBufferLogger(LevelInfo, "text")
	fallback := Discard()

	assert.Same(t, fallback, FromContext(context.Background(), fallback))

	ctx := IntoContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx, fallback))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"bogus":   LevelInfo,
		"":        LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestSanitizeForLog(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "flex", "flex"},
		{"newline injection", "flex\nlevel=ERROR msg=forged", "flex level=ERROR msg=forged"},
		{"tabs", "a\tb", "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeForLog(tt.input))
		})
	}

	long := strings.Repeat("x", 300)
	out := SanitizeForLog(long)
	assert.True(t, strings.HasSuffix(out, "...[TRUNCATED]"))
	assert.Len(t, out, 256+len("...[TRUNCATED]"))
}

func TestPerfLogger(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, "text")
	ctx := context.Background()

	op := StartOperation(logger, "export")
	d := op.End(ctx, "files", 3)
	assert.GreaterOrEqual(t, int64(d), int64(0))
	assert.Contains(t, buf.String(), "operation=export")
	assert.Contains(t, buf.String(), "files=3")

	buf.Reset()
	StartOperation(logger, "export").EndWithError(ctx, errors.New("disk full"))
	assert.Contains(t, buf.String(), "Operation failed")
	assert.Contains(t, buf.String(), "disk full")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error(context.Background(), errors.New("x"), "dropped")
	})
}
