// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// decodeTOML decodes a TOML document onto a defaults-populated Config, so
// keys absent from the document keep their default values. Unknown keys are
// ignored.
func decodeTOML(text string) (*Config, error) {
	cfg := Default()

	md, err := toml.Decode(text, cfg)
	if err != nil {
		return nil, fmt.Errorf("error decoding toml configs: %w", err)
	}

	if !md.IsDefined("log") {
		return nil, errMissingLogSection
	}

	return cfg, nil
}

// EncodeTOML writes cfg as a TOML document that [Load] parses back into an
// equal value.
func (cfg *Config) EncodeTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("error encoding toml configs: %w", err)
	}

	return nil
}
