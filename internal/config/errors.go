package config

import (
	"errors"
	"fmt"
)

// Kinds of configuration failures. A [*LoadError] always carries one of them
// as its Kind, so callers can match with errors.Is.
var (
	// ErrFileNotFound indicates that the configuration file could not be
	// opened (missing, permission denied, ...).
	ErrFileNotFound = errors.New("configuration file could not be opened")
	// ErrEncoding indicates that the file could not be read as UTF-8 text.
	ErrEncoding = errors.New("configuration file is not valid UTF-8")
	// ErrSchema indicates that the document does not match the configuration
	// schema or fails validation.
	ErrSchema = errors.New("configuration does not match the schema")
)

var (
	errUnknownLevel      = errors.New("unknown log level")
	errMissingLogSection = errors.New("missing required table `log`")
	errInvalidUTF8       = errors.New("stream did not contain valid UTF-8")
	errDateFormat        = errors.New("invalid date format")
)

// LoadError describes a failed configuration load.
type LoadError struct {
	// Kind is one of ErrFileNotFound, ErrEncoding or ErrSchema.
	Kind error
	// Path is the configuration source, the file path or "environment".
	Path string
	// Err is the underlying cause.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v (%s): %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
