// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Installer activates a Logger as the process-wide zerolog logger at most
// once. The zero value is ready to use.
type Installer struct {
	installed atomic.Bool
}

var defaultInstaller Installer

// Install activates l through the process-wide Installer.
func Install(l *Logger) error {
	return defaultInstaller.Install(l)
}

// Install makes l the logger behind zerolog's global log package and the
// fallback of FromContext. It also lowers zerolog's global level to Trace so
// that only the per-logger level filters records. Installing a second logger through the same
// Installer fails with ErrInstall and leaves the first one active.
func (i *Installer) Install(l *Logger) error {
	if l == nil {
		return fmt.Errorf("%w: %w", ErrInstall, errNilLogger)
	}

	if !i.installed.CompareAndSwap(false, true) {
		return fmt.Errorf("%w: %w", ErrInstall, errAlreadyInstalled)
	}

	// Filtering happens per logger, so the global level must not hide
	// Trace records.
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	installed := l.Logger
	log.Logger = installed
	zerolog.DefaultContextLogger = &installed

	return nil
}

// Installed reports whether a logger has been installed.
func (i *Installer) Installed() bool {
	return i.installed.Load()
}
