// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Level is the minimum severity filter of the logging pipeline.
//
// Levels are ordered Trace < Debug < Info < Warn < Error. Off disables all
// output. The zero value means "not set" and never survives [Load].
type Level int8

const (
	levelUnset Level = iota
	LevelTrace
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

var levelNames = map[Level]string{
	LevelTrace: "Trace",
	LevelDebug: "Debug",
	LevelInfo:  "Info",
	LevelWarn:  "Warn",
	LevelError: "Error",
	LevelOff:   "Off",
}

// ParseLevel parses a level name case-insensitively.
func ParseLevel(s string) (Level, error) {
	for lvl, name := range levelNames {
		if strings.EqualFold(s, name) {
			return lvl, nil
		}
	}

	return levelUnset, fmt.Errorf("%w %q, expected one of Trace, Debug, Info, Warn, Error, Off", errUnknownLevel, s)
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}

	return fmt.Sprintf("Level(%d)", int8(l))
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", errUnknownLevel, int8(l))
	}

	return []byte(levelNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It is used by the TOML,
// YAML and environment decoders alike.
func (l *Level) UnmarshalText(text []byte) error {
	lvl, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = lvl
	return nil
}
