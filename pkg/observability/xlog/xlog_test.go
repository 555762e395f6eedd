package xlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ossobv/ipgrep/pkg/observability/xlog"
)

func build(t *testing.T, b *xlog.Builder) xlog.LoggerWithLevel {
	t.Helper()
	logger, cleanup, err := b.Build()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, cleanup()) })
	return logger
}

// =============================================================================
// Builder
// =============================================================================

func TestBuilder_DefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().SetOutput(&buf))
	ctx := context.Background()

	logger.Info(ctx, "hidden")
	logger.Warn(ctx, "shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Equal(t, xlog.LevelWarn, logger.GetLevel())
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		b       *xlog.Builder
		wantErr error
	}{
		{"bad level", xlog.New().SetLevelString("loud"), xlog.ErrUnknownLevel},
		{"bad format", xlog.New().SetFormat("xml"), xlog.ErrUnknownFormat},
		{"nil output", xlog.New().SetOutput(nil), xlog.ErrNilOutput},
		{"first error wins", xlog.New().SetFormat("xml").SetLevelString("loud"), xlog.ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, cleanup, err := tt.b.Build()
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, logger)
			assert.Nil(t, cleanup)
		})
	}
}

func TestBuilder_EmptyValuesKeepDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().SetOutput(&buf).SetLevelString(" ").SetFormat("").SetRotation(""))
	logger.Warn(context.Background(), "kept")
	assert.Contains(t, buf.String(), "level=WARN msg=kept")
}

func TestBuilder_JSONWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().
		SetOutput(&buf).
		SetFormat("JSON").
		SetLevel(xlog.LevelDebug).
		SetAttrs(slog.String("prog", "ipgrep")).
		SetReplaceAttr(xlog.OmitTime))

	logger.Debug(context.Background(), "host bits set",
		xlog.Source("a.log"), xlog.Line(12), xlog.Literal([]byte("10.0.0.7/24")))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "host bits set", rec["msg"])
	assert.Equal(t, "ipgrep", rec["prog"])
	assert.Equal(t, "a.log", rec[xlog.KeySource])
	assert.InDelta(t, 12, rec[xlog.KeyLine], 0)
	assert.Equal(t, "10.0.0.7/24", rec[xlog.KeyLiteral])
	assert.NotContains(t, rec, slog.TimeKey)
}

func TestBuilder_Rotation(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "ipgrep.log")
	logger, cleanup, err := xlog.New().SetRotation(file).Build()
	require.NoError(t, err)
	logger.Error(context.Background(), "to file")
	require.NoError(t, cleanup())
	require.NoError(t, cleanup())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestBuilder_AddSource(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().SetOutput(&buf).SetAddSource(true))
	logger.Warn(context.Background(), "where")
	assert.Contains(t, buf.String(), "xlog_test.go")
}

// =============================================================================
// Logger
// =============================================================================

func TestLogger_WithSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().SetOutput(&buf))
	child := logger.With(xlog.Component("xgrep"))
	assert.Same(t, logger, logger.With())

	ctx := context.Background()
	child.Info(ctx, "before")
	logger.SetLevel(xlog.LevelInfo)
	child.Info(ctx, "after")

	out := buf.String()
	assert.NotContains(t, out, "before")
	assert.Contains(t, out, "component=xgrep")
	assert.True(t, logger.Enabled(ctx, xlog.LevelInfo))
	assert.False(t, logger.Enabled(ctx, xlog.LevelDebug))
}

func TestSlog(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().SetOutput(&buf).SetFormat("json"))
	sl := xlog.Slog(logger.With(xlog.Component("xpool")))

	sl.Info("hidden")
	sl.Error("shown", "index", 3)
	logger.SetLevel(xlog.LevelInfo)
	sl.Info("now visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"index":3`)
	assert.Contains(t, out, `"component":"xpool"`)
	assert.Contains(t, out, "now visible")

	assert.Same(t, slog.Default(), xlog.Slog(nil))
}

//nolint:staticcheck // 验证 nil context 不会 panic
func TestLogger_NilContext(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().SetOutput(&buf))
	assert.NotPanics(t, func() {
		logger.Error(nil, "nil ctx")
		_ = logger.Enabled(nil, xlog.LevelError)
	})
	assert.Contains(t, buf.String(), "nil ctx")
}

// =============================================================================
// 属性与级别
// =============================================================================

func TestAttrs(t *testing.T) {
	assert.Equal(t, slog.Attr{}, xlog.Err(nil))
	assert.Equal(t, "boom", xlog.Err(errors.New("boom")).Value.String())
	assert.Equal(t, "1.5s", xlog.Duration(1500*time.Millisecond).Value.String())
	assert.Equal(t, int64(7), xlog.Count(7).Value.Int64())
	assert.Equal(t, "search", xlog.Operation("search").Value.String())
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want xlog.Level
	}{
		{"debug", xlog.LevelDebug},
		{" INFO ", xlog.LevelInfo},
		{"warning", xlog.LevelWarn},
		{"Warn", xlog.LevelWarn},
		{"error", xlog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := xlog.ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			text, err := got.MarshalText()
			require.NoError(t, err)
			var back xlog.Level
			require.NoError(t, back.UnmarshalText(text))
			assert.Equal(t, got, back)
		})
	}

	var l xlog.Level
	assert.ErrorIs(t, l.UnmarshalText([]byte("loud")), xlog.ErrUnknownLevel)
	assert.Equal(t, "INFO+2", xlog.Level(2).String())
}

// =============================================================================
// 全局 Logger
// =============================================================================

func TestGlobal(t *testing.T) {
	t.Cleanup(xlog.ResetDefault)

	def := xlog.Default()
	assert.Same(t, def, xlog.Default())
	assert.Equal(t, xlog.LevelWarn, def.GetLevel())

	var buf bytes.Buffer
	logger, _, err := xlog.New().SetOutput(&buf).SetLevel(xlog.LevelDebug).SetAddSource(true).Build()
	require.NoError(t, err)
	xlog.SetDefault(logger)
	xlog.SetDefault(nil)

	ctx := context.Background()
	xlog.Debug(ctx, "d")
	xlog.Info(ctx, "i")
	xlog.Warn(ctx, "w")
	xlog.Error(ctx, "e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Contains(t, line, "xlog_test.go", "global helpers report the caller")
	}
}
