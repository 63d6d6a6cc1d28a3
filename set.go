// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"iter"
	"slices"
)

// Set is an ordered list of patterns combined with logical OR.
//
// An empty Set matches nothing.
type Set []*Pattern

// CompileAll compiles patterns in order into a Set.
func CompileAll(patterns ...string) (Set, error) {
	set := make(Set, 0, len(patterns))
	for _, pattern := range patterns {
		p, err := Compile(pattern)
		if err != nil {
			return nil, err
		}

		set = append(set, p)
	}

	return set, nil
}

// NewSet builds a Set from already compiled patterns, skipping nil entries.
func NewSet(patterns ...*Pattern) Set {
	set := make(Set, 0, len(patterns))
	for _, p := range patterns {
		if p != nil {
			set = append(set, p)
		}
	}

	return set
}

// Match reports whether any pattern in the set selects path.
func (s Set) Match(path string) bool {
	return s.Index(path) >= 0
}

// Index returns the index of the first pattern selecting path, or -1.
func (s Set) Index(path string) int {
	if len(s) == 0 {
		return -1
	}

	segs, isDir := splitCandidate(path)
	for i, p := range s {
		if p.matchSegments(segs, isDir) {
			return i
		}
	}

	return -1
}

// Filter lazily yields candidates selected by the set, in input order.
func (s Set) Filter(candidates iter.Seq[string]) iter.Seq[string] {
	return Select(s, candidates)
}

// FilterSlice returns candidates selected by the set, in input order.
func (s Set) FilterSlice(candidates []string) []string {
	return slices.Collect(s.Filter(slices.Values(candidates)))
}

// Strings returns the source patterns.
func (s Set) Strings() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.String()
	}

	return out
}
