// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

// MergeRules merges rule slices preserving input order.
func MergeRules(ruleSets ...[]Rule) []Rule {
	total := 0
	for _, set := range ruleSets {
		total += len(set)
	}

	out := make([]Rule, 0, total)
	for _, set := range ruleSets {
		out = append(out, set...)
	}

	return out
}

// IncludeRules wraps patterns as include rules.
func IncludeRules(patterns ...string) []Rule {
	return rulesWithAction(ActionInclude, patterns)
}

// ExcludeRules wraps patterns as exclude rules.
func ExcludeRules(patterns ...string) []Rule {
	return rulesWithAction(ActionExclude, patterns)
}

func rulesWithAction(action Action, patterns []string) []Rule {
	out := make([]Rule, len(patterns))
	for i, p := range patterns {
		out[i] = Rule{Pattern: p, Action: action}
	}

	return out
}
