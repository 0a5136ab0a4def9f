// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
)

// dateFormatReference is the timestamp every date format is rendered against
// during validation.
var dateFormatReference = time.Date(2006, time.January, 2, 15, 4, 5, 0, time.Local)

// ValidateDateFormat checks a strftime pattern before it is used for the
// first log line. A directive is '%', an optional '-' or ':' flag, an
// optional 'E' or 'O' modifier and a conversion character. Every directive
// must be one strftime.Format renders; it echoes the others back verbatim.
func ValidateDateFormat(pattern string) error {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}

		start := i
		i++
		if i < len(pattern) && (pattern[i] == '-' || pattern[i] == ':') {
			i++
		}
		if i < len(pattern) && (pattern[i] == 'E' || pattern[i] == 'O') {
			i++
		}
		if i >= len(pattern) {
			return fmt.Errorf("%w %q: incomplete directive at offset %d", errDateFormat, pattern, start)
		}

		directive := pattern[start : i+1]
		if strftime.Format(directive, dateFormatReference) == directive {
			return fmt.Errorf("%w %q: unsupported directive %s at offset %d", errDateFormat, pattern, directive, start)
		}
	}

	return nil
}
