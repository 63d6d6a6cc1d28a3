// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Patterns is a configuration value holding one pattern or a list of them.
//
// In YAML and JSON both `files: "*.h"` and `files: ["*.h", "*.c"]` decode to
// a list; null decodes to an empty list.
type Patterns []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Patterns) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*p = nil
			return nil
		}

		var s string
		if err := node.Decode(&s); err != nil {
			return fmt.Errorf("decode pattern: %w", err)
		}

		*p = Patterns{s}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return fmt.Errorf("decode pattern list: %w", err)
		}

		*p = list
		return nil
	default:
		return fmt.Errorf("line %d: patterns must be a string or a list of strings", node.Line)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Patterns) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*p = nil
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode pattern: %w", err)
		}

		*p = Patterns{s}
		return nil
	default:
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("decode pattern list: %w", err)
		}

		*p = list
		return nil
	}
}

// Compile compiles all patterns into a Set.
func (p Patterns) Compile() (Set, error) {
	return CompileAll(p...)
}
