// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// decodeYAML is the YAML counterpart of decodeTOML: same keys, same
// defaulting and the same required `log` mapping.
func decodeYAML(text string) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	if len(doc.Content) == 0 || !hasMappingKey(doc.Content[0], "log") {
		return nil, errMissingLogSection
	}

	cfg := Default()
	if err := doc.Content[0].Decode(cfg); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	return cfg, nil
}

func hasMappingKey(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}

	// Content alternates key and value nodes.
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}

	return false
}

// EncodeYAML writes cfg as a YAML document.
func (cfg *Config) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("error encoding yaml configs: %w", err)
	}

	return enc.Close()
}
