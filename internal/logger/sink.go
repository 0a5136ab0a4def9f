// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// sink is a single log destination. Writes are serialised so that a record
// is never interleaved with another one mid-line.
type sink struct {
	name   string
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	closed bool
}

func newSink(name string, w io.Writer, closer io.Closer) *sink {
	return &sink{name: name, w: w, closer: closer}
}

func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, fmt.Errorf("%s: %w", s.name, errClosed)
	}

	n, err := s.w.Write(p)
	if err != nil {
		return n, fmt.Errorf("%s: %w", s.name, err)
	}

	return n, nil
}

func (s *sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.closer == nil {
		s.closed = true
		return nil
	}

	s.closed = true
	return s.closer.Close()
}

// dispatcher writes every record to each attached sink, in attachment order.
// The console is always the first sink.
type dispatcher struct {
	sinks []*sink
}

func newDispatcher(console *sink) *dispatcher {
	return &dispatcher{sinks: []*sink{console}}
}

func (d *dispatcher) attach(s *sink) {
	d.sinks = append(d.sinks, s)
}

// Write hands p to every sink. A failing sink does not stop the others; all
// failures are joined into the returned error.
func (d *dispatcher) Write(p []byte) (int, error) {
	var errs []error
	for _, s := range d.sinks {
		if _, err := s.Write(p); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return 0, errors.Join(errs...)
	}

	return len(p), nil
}

func (d *dispatcher) Close() error {
	var errs []error
	for _, s := range d.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", s.name, err))
		}
	}

	return errors.Join(errs...)
}
