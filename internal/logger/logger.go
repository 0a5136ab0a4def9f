// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that fans
// every record out to the console and to any number of log files, all
// sharing one human-readable line format:
//
//	<timestamp> [<target>] [<LEVEL>]: <message>
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Trace, Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer; code that only holds a
// context.Context can obtain the installed logger via FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MKhiriev/montar/internal/config"
)

// DefaultTarget is the target of records emitted through a Logger that was
// not derived with Named.
const DefaultTarget = "montar"

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	// sinks owns the file destinations; nil for derived loggers.
	sinks *dispatcher
}

// Option customises a Logger built by New.
type Option func(*options)

type options struct {
	console io.Writer
	now     func() time.Time
	target  string
}

// WithConsole replaces os.Stdout as the console destination.
func WithConsole(w io.Writer) Option {
	return func(o *options) {
		o.console = w
	}
}

// WithClock replaces time.Now as the source of record timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithTarget replaces DefaultTarget.
func WithTarget(target string) Option {
	return func(o *options) {
		o.target = target
	}
}

// New builds the logging dispatcher described by cfg.
//
// The console sink is attached first, then one file sink per cfg.Files entry
// in order. Files are created if absent and appended to otherwise. The first
// file that cannot be opened aborts construction with a *SinkError; files
// opened before it stay on disk.
//
// Records below cfg.Level are discarded by zerolog before they are
// formatted. Every other record is formatted once and written, whole, to
// every sink. Trace records additionally need zerolog's global level at
// Trace, which Install sets.
func New(cfg config.LoggingConfig, opts ...Option) (*Logger, error) {
	o := options{
		console: os.Stdout,
		now:     time.Now,
		target:  DefaultTarget,
	}
	for _, opt := range opts {
		opt(&o)
	}

	d := newDispatcher(newSink("stdout", o.console, nil))
	for _, path := range cfg.Files {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			// The process is about to exit; release what was opened but
			// leave the files in place.
			_ = d.Close()
			return nil, &SinkError{Path: path, Err: err}
		}
		d.attach(newSink(path, f, f))
	}

	zl := zerolog.New(newLineWriter(cfg.DateFormat, o.now, o.target, d)).
		Level(zerologLevel(cfg.Level)).
		With().
		Str(TargetFieldName, o.target).
		Logger()

	return &Logger{Logger: zl, sinks: d}, nil
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Named returns a child *Logger whose records carry target instead of the
// parent's. All other fields and the sinks are shared with the parent.
func (l *Logger) Named(target string) *Logger {
	return &Logger{Logger: l.With().Str(TargetFieldName, target).Logger()}
}

// Close releases the file sinks. The console is left open. Closing a
// derived or Nop logger is a no-op.
func (l *Logger) Close() error {
	if l.sinks == nil {
		return nil
	}

	return l.sinks.Close()
}

// WithContext returns a copy of ctx carrying l.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns the installed
// process-wide logger (see Install), or a disabled one before installation,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}

// zerologLevel maps the configured severity filter onto zerolog levels.
func zerologLevel(l config.Level) zerolog.Level {
	switch l {
	case config.LevelTrace:
		return zerolog.TraceLevel
	case config.LevelDebug:
		return zerolog.DebugLevel
	case config.LevelInfo:
		return zerolog.InfoLevel
	case config.LevelWarn:
		return zerolog.WarnLevel
	case config.LevelError:
		return zerolog.ErrorLevel
	case config.LevelOff:
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
