// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"iter"
	"slices"
)

// Matcher reports whether one candidate path is selected.
//
// *Pattern, Set and *Selector implement it.
type Matcher interface {
	Match(path string) bool
}

// Select lazily yields candidates accepted by m.
//
// Output keeps input order and yields each input element at most once. The
// returned sequence can be ranged over again if candidates can.
func Select(m Matcher, candidates iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for candidate := range candidates {
			if !m.Match(candidate) {
				continue
			}

			if !yield(candidate) {
				return
			}
		}
	}
}

// Filter compiles patterns and lazily yields candidates matching any of them.
//
// Compile errors are returned before any candidate is read.
func Filter(candidates iter.Seq[string], patterns ...string) (iter.Seq[string], error) {
	set, err := CompileAll(patterns...)
	if err != nil {
		return nil, err
	}

	return set.Filter(candidates), nil
}

// FilterSlice is Filter over a slice, collecting the result.
func FilterSlice(candidates []string, patterns ...string) ([]string, error) {
	seq, err := Filter(slices.Values(candidates), patterns...)
	if err != nil {
		return nil, err
	}

	return slices.Collect(seq), nil
}
