package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"dario.cat/mergo"
)

// EnvSource is the LoadError.Path reported for failures of the environment
// layer.
const EnvSource = "environment"

type configBuilder struct {
	path     string
	base     *Config
	overlays []*Config
	err      error
}

func newConfigBuilder(path string) *configBuilder {
	return &configBuilder{
		path:     path,
		overlays: make([]*Config, 0, 1),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}

	config := b.base
	if config == nil {
		config = Default()
	}

	for _, overlay := range b.overlays {
		if err := mergo.Merge(config, overlay, mergo.WithOverride); err != nil {
			return nil, &LoadError{Kind: ErrSchema, Path: EnvSource, Err: fmt.Errorf("error merging configs: %w", err)}
		}
	}

	if err := config.validate(); err != nil {
		return nil, &LoadError{Kind: ErrSchema, Path: b.path, Err: err}
	}

	return config, nil
}

// withFile opens, reads and decodes the configuration file. Each step maps
// to its own failure kind.
func (b *configBuilder) withFile() *configBuilder {
	if b.err != nil {
		return b
	}

	f, err := os.Open(b.path)
	if err != nil {
		b.err = &LoadError{Kind: ErrFileNotFound, Path: b.path, Err: err}
		return b
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		b.err = &LoadError{Kind: ErrEncoding, Path: b.path, Err: err}
		return b
	}
	if !utf8.Valid(raw) {
		b.err = &LoadError{Kind: ErrEncoding, Path: b.path, Err: errInvalidUTF8}
		return b
	}

	decode := decodeTOML
	if isYAMLPath(b.path) {
		decode = decodeYAML
	}

	cfg, err := decode(string(raw))
	if err != nil {
		b.err = &LoadError{Kind: ErrSchema, Path: b.path, Err: err}
		return b
	}

	b.base = cfg
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	if b.err != nil {
		return b
	}

	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = &LoadError{Kind: ErrSchema, Path: EnvSource, Err: err}
		return b
	}

	b.overlays = append(b.overlays, envCfg)
	return b
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
