package logger

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/montar/internal/config"
)

var fixedTime = time.Date(2024, time.March, 5, 7, 8, 9, 0, time.Local)

func fixedClock() time.Time { return fixedTime }

func newTestLogger(t *testing.T, cfg config.LoggingConfig, opts ...Option) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	opts = append([]Option{WithConsole(&buf), WithClock(fixedClock)}, opts...)

	l, err := New(cfg, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	return l, &buf
}

// allowLevel sets zerolog's global level for the duration of the test.
func allowLevel(t *testing.T, lvl zerolog.Level) {
	t.Helper()
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(lvl)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
}

func defaultLogging() config.LoggingConfig {
	return config.Default().Log
}

// TestNew_NotNil verifies that New returns a non-nil *Logger for the default
// configuration.
func TestNew_NotNil(t *testing.T) {
	l, _ := newTestLogger(t, defaultLogging())
	require.NotNil(t, l)
}

// TestNew_LineFormat verifies the rendered line layout.
func TestNew_LineFormat(t *testing.T) {
	l, buf := newTestLogger(t, defaultLogging())

	l.Info().Msg("Address: 127.0.0.1:25565")

	assert.Equal(t, "05-03-2024 07-08-09 [montar] [INFO]: Address: 127.0.0.1:25565\n", buf.String())
}

// TestNew_CustomDateFormat verifies that the configured strftime pattern is
// used for the timestamp.
func TestNew_CustomDateFormat(t *testing.T) {
	cfg := defaultLogging()
	cfg.DateFormat = "%Y/%m/%d %H:%M:%S"
	l, buf := newTestLogger(t, cfg)

	l.Warn().Msg("hello")

	assert.Equal(t, "2024/03/05 07:08:09 [montar] [WARN]: hello\n", buf.String())
}

// TestNew_TimestampPerRecord verifies that the timestamp reflects emission
// time, not construction time.
func TestNew_TimestampPerRecord(t *testing.T) {
	now := fixedTime
	cfg := defaultLogging()
	cfg.DateFormat = "%H:%M:%S"
	l, buf := newTestLogger(t, cfg, WithClock(func() time.Time { return now }))

	l.Info().Msg("first")
	now = now.Add(time.Minute)
	l.Info().Msg("second")

	assert.Equal(t,
		"07:08:09 [montar] [INFO]: first\n07:09:09 [montar] [INFO]: second\n",
		buf.String())
}

// TestNew_LevelFilter verifies that records below the configured level are
// dropped and the rest are emitted.
func TestNew_LevelFilter(t *testing.T) {
	allowLevel(t, zerolog.TraceLevel)
	tests := []struct {
		level    config.Level
		expected []string
	}{
		{config.LevelTrace, []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}},
		{config.LevelDebug, []string{"DEBUG", "INFO", "WARN", "ERROR"}},
		{config.LevelInfo, []string{"INFO", "WARN", "ERROR"}},
		{config.LevelWarn, []string{"WARN", "ERROR"}},
		{config.LevelError, []string{"ERROR"}},
		{config.LevelOff, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			cfg := defaultLogging()
			cfg.Level = tt.level
			l, buf := newTestLogger(t, cfg)

			l.Trace().Msg("m")
			l.Debug().Msg("m")
			l.Info().Msg("m")
			l.Warn().Msg("m")
			l.Error().Msg("m")

			var expected string
			for _, lvl := range tt.expected {
				expected += "05-03-2024 07-08-09 [montar] [" + lvl + "]: m\n"
			}
			assert.Equal(t, expected, buf.String())
		})
	}
}

// TestNew_ExtraFields verifies that structured fields follow the message.
func TestNew_ExtraFields(t *testing.T) {
	l, buf := newTestLogger(t, defaultLogging())

	l.Error().Err(errors.New("boom")).Str("path", "a.log").Msg("write failed")

	assert.Equal(t, "05-03-2024 07-08-09 [montar] [ERROR]: write failed error=boom path=a.log\n", buf.String())
}

// TestNew_EmptyMessage verifies that a record without a message keeps the
// separator after the level.
func TestNew_EmptyMessage(t *testing.T) {
	l, buf := newTestLogger(t, defaultLogging())

	l.Info().Send()
	l.Warn().Msg("")

	assert.Equal(t,
		"05-03-2024 07-08-09 [montar] [INFO]: \n"+
			"05-03-2024 07-08-09 [montar] [WARN]: \n",
		buf.String())
}

// TestNew_EmptyMessageWithFields verifies that fields follow the level
// directly when there is no message.
func TestNew_EmptyMessageWithFields(t *testing.T) {
	l, buf := newTestLogger(t, defaultLogging())

	l.Info().Str("path", "a.log").Send()

	assert.Equal(t, "05-03-2024 07-08-09 [montar] [INFO]: path=a.log\n", buf.String())
}

// TestNew_WithTarget verifies that WithTarget replaces the default target.
func TestNew_WithTarget(t *testing.T) {
	l, buf := newTestLogger(t, defaultLogging(), WithTarget("montar/bootstrap"))

	l.Info().Msg("x")

	assert.Equal(t, "05-03-2024 07-08-09 [montar/bootstrap] [INFO]: x\n", buf.String())
}

// TestNew_FileSinks verifies that every file receives the same bytes as the
// console.
func TestNew_FileSinks(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.log")
	b := filepath.Join(dir, "b.log")

	cfg := defaultLogging()
	cfg.Level = config.LevelWarn
	cfg.Files = []string{a, b}
	l, buf := newTestLogger(t, cfg)

	l.Info().Msg("hidden")
	l.Warn().Msg("visible")
	require.NoError(t, l.Close())

	expected := "05-03-2024 07-08-09 [montar] [WARN]: visible\n"
	assert.Equal(t, expected, buf.String())

	for _, p := range []string{a, b} {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, expected, string(data))
	}
}

// TestNew_FileSinkAppends verifies that an existing file is appended to.
func TestNew_FileSinkAppends(t *testing.T) {
	p := filepath.Join(t.TempDir(), "montar.log")
	require.NoError(t, os.WriteFile(p, []byte("previous run\n"), 0o600))

	cfg := defaultLogging()
	cfg.Files = []string{p}
	l, _ := newTestLogger(t, cfg)

	l.Info().Msg("next run")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "previous run\n05-03-2024 07-08-09 [montar] [INFO]: next run\n", string(data))
}

// TestNew_SinkError verifies that an unopenable file aborts construction with
// a *SinkError and that files opened before it stay on disk.
func TestNew_SinkError(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")
	bad := filepath.Join(dir, "missing", "dir", "third.log")

	cfg := defaultLogging()
	cfg.Files = []string{first, second, bad}

	l, err := New(cfg, WithConsole(&bytes.Buffer{}))
	assert.Nil(t, l)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSink)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var sinkErr *SinkError
	require.ErrorAs(t, err, &sinkErr)
	assert.Equal(t, bad, sinkErr.Path)

	assert.FileExists(t, first)
	assert.FileExists(t, second)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
	assert.NoError(t, l.Close())
}

// TestNamed_OverridesTarget verifies that a child logger renders its own
// target while sharing the parent's sinks.
func TestNamed_OverridesTarget(t *testing.T) {
	parent, buf := newTestLogger(t, defaultLogging())
	child := parent.Named("montar/server")

	require.NotSame(t, parent, child)
	child.Info().Msg("child")
	parent.Info().Msg("parent")

	assert.Equal(t,
		"05-03-2024 07-08-09 [montar/server] [INFO]: child\n05-03-2024 07-08-09 [montar] [INFO]: parent\n",
		buf.String())
	assert.NoError(t, child.Close())
}

// TestNamed_InheritsFields verifies that context fields survive Named.
func TestNamed_InheritsFields(t *testing.T) {
	parent, buf := newTestLogger(t, defaultLogging())
	parent.Logger = parent.With().Str("role", "server").Logger()

	parent.Named("child").Info().Msg("m")

	assert.Equal(t, "05-03-2024 07-08-09 [child] [INFO]: m role=server\n", buf.String())
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger that was previously attached with WithContext.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	l, buf := newTestLogger(t, defaultLogging())
	ctx := l.Named("ctx").WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "05-03-2024 07-08-09 [ctx] [INFO]: from context\n", buf.String())
}

// TestNew_LeavesGlobalLevel verifies that building a logger does not touch
// zerolog's process-wide level.
func TestNew_LeavesGlobalLevel(t *testing.T) {
	allowLevel(t, zerolog.InfoLevel)
	newTestLogger(t, defaultLogging())
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestZerologLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, zerologLevel(config.LevelTrace))
	assert.Equal(t, zerolog.DebugLevel, zerologLevel(config.LevelDebug))
	assert.Equal(t, zerolog.InfoLevel, zerologLevel(config.LevelInfo))
	assert.Equal(t, zerolog.WarnLevel, zerologLevel(config.LevelWarn))
	assert.Equal(t, zerolog.ErrorLevel, zerologLevel(config.LevelError))
	assert.Equal(t, zerolog.Disabled, zerologLevel(config.LevelOff))
	assert.Equal(t, zerolog.InfoLevel, zerologLevel(config.Level(0)))
}
