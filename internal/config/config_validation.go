// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [Config] satisfies all invariants
// before it is used at startup: the level is one of the defined values and
// the date format can be rendered.
func (cfg *Config) validate() error {
	if !cfg.Log.Level.Valid() {
		return fmt.Errorf("log.level: %w %s", errUnknownLevel, cfg.Log.Level)
	}

	if err := ValidateDateFormat(cfg.Log.DateFormat); err != nil {
		return fmt.Errorf("log.date_format: %w", err)
	}

	return nil
}
