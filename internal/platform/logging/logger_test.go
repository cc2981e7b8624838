package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v want %v", in, got, want)
		}
	}
}

func TestLogger_WritesKeyValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, LevelInfo).Named("sqlstore")
	logger.Debug("hidden")
	logger.Info("schema ready", "tables", 7, "error", errors.New("none"))

	var entry map[string]any
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "schema ready", entry["msg"])
	require.Equal(t, "sqlstore", entry["component"])
	require.EqualValues(t, 7, entry["tables"])
	require.Equal(t, "none", entry["error"])
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	t.Parallel()

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	var buf bytes.Buffer
	New(&buf, LevelInfo).InfoContext(ctx, "traced")

	var entry map[string]any
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, span.SpanContext().TraceID().String(), entry["trace_id"])
	require.Equal(t, span.SpanContext().SpanID().String(), entry["span_id"])
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, ok := ParseFormat(" Console ")
	require.True(t, ok)
	require.Equal(t, FormatConsole, f)

	_, ok = ParseFormat("xml")
	require.False(t, ok)
}

func TestLogger_ConsoleFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWithFormat(&buf, LevelDebug, FormatConsole)
	require.True(t, logger.Enabled(LevelDebug))
	logger.Debug("match patched", "match_id", "m1")

	line := buf.String()
	require.Contains(t, line, "match patched")
	require.Contains(t, line, `"match_id": "m1"`)
}

func TestLogger_SyncIsIdempotent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)
	child := logger.Named("http")

	require.NoError(t, child.Sync())
	require.NoError(t, logger.Sync())
	require.False(t, logger.Enabled(LevelDebug))
}
