package logger

import (
	"errors"
	"fmt"
)

var (
	// ErrSink indicates that a log destination could not be opened.
	ErrSink = errors.New("log sink could not be opened")
	// ErrInstall indicates that the process-wide logger could not be
	// installed.
	ErrInstall = errors.New("logger could not be installed")

	errClosed           = errors.New("log sink is closed")
	errAlreadyInstalled = errors.New("a process-wide logger is already installed")
	errNilLogger        = errors.New("nil logger")
)

// SinkError reports the log file that could not be opened.
type SinkError struct {
	Path string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("%v (%s): %v", ErrSink, e.Path, e.Err)
}

// Unwrap exposes both ErrSink and the underlying I/O error.
func (e *SinkError) Unwrap() []error {
	return []error{ErrSink, e.Err}
}
