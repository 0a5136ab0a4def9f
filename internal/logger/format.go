// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
	"github.com/rs/zerolog"
)

// TargetFieldName is the event field that names the emitting component.
const TargetFieldName = "target"

// newLineWriter returns the zerolog writer rendering
//
//	<timestamp> [<target>] [<LEVEL>]: <message> [key=value ...]
//
// to out. The timestamp is taken from now when the record is written and
// rendered with the strftime pattern dateFormat.
func newLineWriter(dateFormat string, now func() time.Time, target string, out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:     out,
		NoColor: true,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			TargetFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{TargetFieldName},
		FormatPrepare: func(evt map[string]interface{}) error {
			evt[zerolog.TimestampFieldName] = strftime.Format(dateFormat, now().Local())

			t, ok := evt[TargetFieldName].(string)
			if !ok {
				t = target
			}
			evt[TargetFieldName] = "[" + t + "]"

			// The separator after the level is kept even when nothing
			// follows it.
			lvl := formatLevel(evt[zerolog.LevelFieldName])
			if isBare(evt) {
				lvl += " "
			}
			evt[zerolog.LevelFieldName] = lvl

			return nil
		},
		FormatTimestamp: formatString,
		FormatLevel:     formatString,
		FormatMessage:   formatString,
	}
}

func formatLevel(i interface{}) string {
	lvl, ok := i.(string)
	if !ok || lvl == "" {
		lvl = "-"
	}

	return "[" + strings.ToUpper(lvl) + "]:"
}

// isBare reports whether evt carries neither a message nor extra fields.
func isBare(evt map[string]interface{}) bool {
	if msg, _ := evt[zerolog.MessageFieldName].(string); msg != "" {
		return false
	}

	for k := range evt {
		switch k {
		case zerolog.TimestampFieldName, zerolog.LevelFieldName, zerolog.MessageFieldName, TargetFieldName:
		default:
			return false
		}
	}

	return true
}

func formatString(i interface{}) string {
	switch v := i.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
