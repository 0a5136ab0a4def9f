// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by [Load].
const EnvPrefix = "MONTAR_"

// parseEnv populates cfg from MONTAR_-prefixed environment variables using
// the caarlos0/env library. Unset variables leave the corresponding field at
// its zero value, so the result can be merged over the file layer.
//
// Returns a wrapped error if a value cannot be converted to the target type
// (e.g. an unknown level name).
func parseEnv(cfg *Config) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
