// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// DefaultPath is the configuration file used when no path argument is given.
const DefaultPath = "Montar.toml"

// Default values applied to every field absent from the configuration file.
const (
	DefaultAddress    = "127.0.0.1:25565"
	DefaultLevel      = LevelInfo
	DefaultDateFormat = "%d-%m-%Y %H-%M-%S"
)

// Config is the top-level configuration container for the Montar server.
//
// Struct tags:
//   - toml / yaml: key names in the configuration file.
//   - env / envPrefix: environment overrides (caarlos0/env), relative to the
//     MONTAR_ prefix.
type Config struct {
	// Address is the host:port the server binds to.
	// Env: MONTAR_ADDRESS
	Address string `toml:"address" yaml:"address" env:"ADDRESS"`

	// Log holds the logging pipeline settings. The table itself is required
	// in the file, even if it is empty.
	Log LoggingConfig `toml:"log" yaml:"log" envPrefix:"LOG_"`
}

// LoggingConfig holds the settings consumed by the logging initializer.
type LoggingConfig struct {
	// Level is the minimum severity that is emitted.
	// Env: MONTAR_LOG_LEVEL
	Level Level `toml:"level" yaml:"level" env:"LEVEL"`

	// DateFormat is the strftime pattern used to render the timestamp of
	// every log line.
	// Env: MONTAR_LOG_DATE_FORMAT
	DateFormat string `toml:"date_format" yaml:"date_format" env:"DATE_FORMAT"`

	// Files lists additional log destinations, opened for append in order.
	// Env: MONTAR_LOG_FILES (comma separated)
	Files []string `toml:"files" yaml:"files" env:"FILES" envSeparator:","`
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	return &Config{
		Address: DefaultAddress,
		Log: LoggingConfig{
			Level:      DefaultLevel,
			DateFormat: DefaultDateFormat,
			Files:      []string{},
		},
	}
}

// ResolvePath returns the configuration path from the positional arguments
// (program name excluded), falling back to [DefaultPath].
func ResolvePath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return DefaultPath
}

// Load reads the configuration file at path, applies defaults and
// environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	return newConfigBuilder(path).
		withFile().
		withEnv().
		build()
}
