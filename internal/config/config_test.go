// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/pathglob"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.Include)
	assert.Empty(t, cfg.Exclude)
	assert.Empty(t, cfg.Root)
	assert.Empty(t, cfg.Archive)
	assert.False(t, cfg.NullSeparated)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pathglob.yaml", `
include: include/
exclude:
  - "*.orig"
  - /include/private/
extensions: [c, .h]
archive: pkg.tar.gz
null_separated: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, pathglob.Patterns{"include/"}, cfg.Include)
	assert.Equal(t, pathglob.Patterns{"*.orig", "/include/private/"}, cfg.Exclude)
	assert.Equal(t, []string{"c", ".h"}, cfg.Extensions)
	assert.Equal(t, "pkg.tar.gz", cfg.Archive)
	assert.True(t, cfg.NullSeparated)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, dir, "bad.yaml", "include: [unterminated\n")
	_, err = Load(bad)
	require.Error(t, err)

	both := writeFile(t, dir, "both.yaml", "root: .\narchive: a.zip\n")
	_, err = Load(both)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRulesOrder(t *testing.T) {
	dir := t.TempDir()
	rulesFile := writeFile(t, dir, "files.glob", "/src/\n!*.tmp\n")

	cfg := &Config{
		Include:    pathglob.Patterns{"include/"},
		Exclude:    pathglob.Patterns{"*.orig"},
		Extensions: []string{"txt"},
		RulesFiles: []string{rulesFile},
	}

	rules, err := cfg.Rules()
	require.NoError(t, err)

	assert.Equal(t, []pathglob.Rule{
		{Pattern: "/src/", Action: pathglob.ActionInclude},
		{Pattern: "*.tmp", Action: pathglob.ActionExclude},
		{Pattern: "include/", Action: pathglob.ActionInclude},
		{Pattern: "*.txt", Action: pathglob.ActionInclude},
		{Pattern: "*.orig", Action: pathglob.ActionExclude},
	}, rules)
}

func TestSelector(t *testing.T) {
	cfg := &Config{
		Include: pathglob.Patterns{"/src/"},
		Exclude: pathglob.Patterns{"*.tmp"},
	}

	sel, err := cfg.Selector()
	require.NoError(t, err)

	got := sel.FilterSlice([]string{"src/", "src/a.c", "src/a.tmp", "lib/src/b.c"})
	assert.Equal(t, []string{"src/", "src/a.c"}, got)

	cfg.Include = pathglob.Patterns{"[broken"}
	_, err = cfg.Selector()
	assert.ErrorIs(t, err, pathglob.ErrInvalidPattern)

	cfg.Include = nil
	cfg.RulesFiles = []string{filepath.Join(t.TempDir(), "missing.glob")}
	_, err = cfg.Selector()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
