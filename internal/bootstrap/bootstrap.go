// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bootstrap runs the startup sequence every Montar process goes
// through before any server code: resolve and load the configuration, build
// the logging dispatcher and install it.
//
// Failures are returned, not acted upon; [Diagnose] turns them into the
// exit code and two-line message the entry point prints.
package bootstrap

import (
	"io"
	"time"

	"github.com/MKhiriev/montar/internal/config"
	"github.com/MKhiriev/montar/internal/logger"
)

// Option customises Run.
type Option func(*options)

type options struct {
	loggerOpts []logger.Option
	installer  *logger.Installer
}

// WithConsole replaces os.Stdout as the console log destination.
func WithConsole(w io.Writer) Option {
	return func(o *options) {
		o.loggerOpts = append(o.loggerOpts, logger.WithConsole(w))
	}
}

// WithClock replaces time.Now as the source of log timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.loggerOpts = append(o.loggerOpts, logger.WithClock(now))
	}
}

// WithInstaller installs the logger through inst instead of the
// process-wide installer.
func WithInstaller(inst *logger.Installer) Option {
	return func(o *options) {
		o.installer = inst
	}
}

// Run loads the configuration named by args (program name excluded, see
// config.ResolvePath), builds the logger described by its log section and
// installs it. The returned logger is already active; the caller owns it and
// should Close it on shutdown.
func Run(args []string, opts ...Option) (*config.Config, *logger.Logger, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := config.Load(config.ResolvePath(args))
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.Log, o.loggerOpts...)
	if err != nil {
		return nil, nil, err
	}

	install := logger.Install
	if o.installer != nil {
		install = o.installer.Install
	}

	if err := install(log); err != nil {
		_ = log.Close()
		return nil, nil, err
	}

	return cfg, log, nil
}
