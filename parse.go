// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseRules parses selection rules, one pattern per line.
//
// Semantics:
// - blank lines and "#" comments are skipped
// - plain lines create include rules
// - "!" creates exclude rule
// - "\#" and "\!" escape leading comment/negation tokens
// - trailing spaces are trimmed unless escaped by "\"
func ParseRules(r io.Reader) ([]Rule, error) {
	s := bufio.NewScanner(r)
	rules := make([]Rule, 0, 16)

	for s.Scan() {
		line := trimTrailingSpaces(strings.TrimRight(s.Text(), "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		action := ActionInclude
		switch {
		case strings.HasPrefix(line, `\#`), strings.HasPrefix(line, `\!`):
			line = line[1:]
		case strings.HasPrefix(line, "!"):
			action = ActionExclude
			line = line[1:]
		}

		if line == "" {
			continue
		}

		rules = append(rules, Rule{
			Pattern: line,
			Action:  action,
		})
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan rules: %w", err)
	}

	return rules, nil
}

// ParseRulesString parses rules from string input.
func ParseRulesString(src string) ([]Rule, error) {
	return ParseRules(strings.NewReader(src))
}

// trimTrailingSpaces removes trailing spaces unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			return s[:len(s)-2] + s[len(s)-1:]
		}

		s = s[:len(s)-1]
	}

	return s
}
