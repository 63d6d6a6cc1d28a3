// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

// Package config loads pathglob command configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/pathglob"
)

// ErrInvalidConfig indicates contradictory or unusable configuration.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents pathglob command configuration
type Config struct {
	// Include patterns, a string or a list. Empty selects everything.
	Include pathglob.Patterns `yaml:"include"`

	// Exclude patterns, a string or a list.
	Exclude pathglob.Patterns `yaml:"exclude"`

	// Extensions add "*.ext" include patterns
	Extensions []string `yaml:"extensions"`

	// RulesFiles are pattern files, plain lines include and "!" lines exclude
	RulesFiles []string `yaml:"rules_files"`

	// Root is a directory whose entries become the candidates
	Root string `yaml:"root"`

	// Archive is a zip or tar archive whose members become the candidates
	Archive string `yaml:"archive"`

	// NullSeparated writes matches separated by NUL instead of newline
	NullSeparated bool `yaml:"null_separated"`
}

// DefaultConfig returns a Config reading candidates from standard input and
// selecting everything.
func DefaultConfig() *Config {
	return &Config{}
}

// Load reads a YAML config file on top of DefaultConfig.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks option combinations.
func (c *Config) Validate() error {
	if c.Root != "" && c.Archive != "" {
		return fmt.Errorf("%w: root and archive are mutually exclusive", ErrInvalidConfig)
	}

	return nil
}

// Rules returns every configured rule in order: rules files, then include,
// extension and exclude patterns.
func (c *Config) Rules() ([]pathglob.Rule, error) {
	fileRules, err := pathglob.LoadRulesFiles(c.RulesFiles...)
	if err != nil {
		return nil, err
	}

	return pathglob.MergeRules(
		fileRules,
		pathglob.IncludeRules(c.Include...),
		pathglob.IncludeRules(pathglob.ExtensionPatterns(c.Extensions)...),
		pathglob.ExcludeRules(c.Exclude...),
	), nil
}

// Selector compiles configured rules.
func (c *Config) Selector() (*pathglob.Selector, error) {
	rules, err := c.Rules()
	if err != nil {
		return nil, err
	}

	return pathglob.NewSelector(rules)
}
