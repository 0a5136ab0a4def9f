// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/montar/internal/config"
	"github.com/MKhiriev/montar/internal/logger"
)

// Process exit codes.
const (
	ExitOK             = 0
	ExitConfigOpen     = 1
	ExitConfigEncoding = 2
	ExitConfigSchema   = 3
	ExitLogging        = 4
	// ExitStartup covers failures outside configuration and logging.
	ExitStartup = 5
)

// Diagnostic is the user-facing description of a failed bootstrap.
type Diagnostic struct {
	// Code is the process exit status.
	Code int
	// Summary names the failing step.
	Summary string
	// Detail is the underlying error text.
	Detail string
}

// Diagnose maps a startup error onto its exit code and message. Errors that
// are neither a *config.LoadError nor a logging failure get ExitStartup.
func Diagnose(err error) Diagnostic {
	var loadErr *config.LoadError
	if errors.As(err, &loadErr) {
		d := Diagnostic{Detail: loadErr.Err.Error()}
		switch {
		case errors.Is(loadErr.Kind, config.ErrFileNotFound):
			d.Code = ExitConfigOpen
			d.Summary = fmt.Sprintf("Could not open configuration file located at '%s' because of the following error:", loadErr.Path)
		case errors.Is(loadErr.Kind, config.ErrEncoding):
			d.Code = ExitConfigEncoding
			d.Summary = "The configuration file could not be read, maybe try converting it to UTF-8?"
		default:
			d.Code = ExitConfigSchema
			d.Summary = "The provided configuration file contains at least one error:"
			if loadErr.Path == config.EnvSource {
				d.Summary = "The " + config.EnvPrefix + "* environment overrides contain at least one error:"
			}
		}
		return d
	}

	var sinkErr *logger.SinkError
	if errors.As(err, &sinkErr) {
		return Diagnostic{
			Code:    ExitLogging,
			Summary: fmt.Sprintf("Could not open log file located at '%s' because of the following error:", sinkErr.Path),
			Detail:  sinkErr.Err.Error(),
		}
	}

	if errors.Is(err, logger.ErrInstall) {
		return Diagnostic{
			Code:    ExitLogging,
			Summary: "The logging configuration could not be set up because of the following error:",
			Detail:  err.Error(),
		}
	}

	return Diagnostic{
		Code:    ExitStartup,
		Summary: "Startup failed because of the following error:",
		Detail:  fmt.Sprint(err),
	}
}

// Write prints the diagnostic as two lines.
func (d Diagnostic) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", d.Summary, d.Detail)
	return err
}
