// Package config provides configuration loading, defaulting, and validation
// facilities for the Montar server.
//
// Configuration is assembled in the following order (later layers override
// earlier non-zero fields):
//  1. Built-in defaults ([Default])
//  2. The configuration file (TOML, or YAML for .yaml/.yml paths)
//  3. MONTAR_-prefixed environment variables
//
// The main entry point is [Load]. Every failure is returned as a
// [*LoadError] whose Kind is one of [ErrFileNotFound], [ErrEncoding] or
// [ErrSchema].
package config
