// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"fmt"
	"iter"
	"slices"
)

// Selector combines include and exclude pattern sets.
type Selector struct {
	include Set
	exclude Set
}

// NewSelector compiles ordered rules into a selector.
//
// Include rules feed the include set and exclude rules the exclude set, each
// keeping input order.
func NewSelector(rules []Rule) (*Selector, error) {
	var include, exclude Set
	for _, rule := range rules {
		if !rule.Action.valid() {
			return nil, fmt.Errorf("%w: unsupported action %d for %q", ErrInvalidRule, rule.Action, rule.Pattern)
		}

		p, err := Compile(rule.Pattern)
		if err != nil {
			return nil, err
		}

		if rule.Action == ActionInclude {
			include = append(include, p)
		} else {
			exclude = append(exclude, p)
		}
	}

	return NewSelectorSets(include, exclude), nil
}

// NewSelectorSets builds a selector from compiled sets.
func NewSelectorSets(include Set, exclude Set) *Selector {
	return &Selector{
		include: NewSet(include...),
		exclude: NewSet(exclude...),
	}
}

// Decide returns deterministic selection decision for one path.
//
// Decision policy:
// - an empty include set includes everything
// - otherwise at least one include pattern must match
// - any matching exclude pattern drops the path
func (s *Selector) Decide(path string) Decision {
	res := Decision{
		Include: -1,
		Exclude: -1,
	}

	included := true
	if len(s.include) > 0 {
		res.Include = s.include.Index(path)
		included = res.Include >= 0
	}

	if !included {
		return res
	}

	res.Exclude = s.exclude.Index(path)
	res.Included = res.Exclude < 0
	return res
}

// Match reports whether path is selected.
func (s *Selector) Match(path string) bool {
	return s.Decide(path).Included
}

// Include returns the include set.
func (s *Selector) Include() Set {
	return slices.Clone(s.include)
}

// Exclude returns the exclude set.
func (s *Selector) Exclude() Set {
	return slices.Clone(s.exclude)
}

// Filter lazily yields selected candidates in input order.
func (s *Selector) Filter(candidates iter.Seq[string]) iter.Seq[string] {
	return Select(s, candidates)
}

// FilterSlice returns selected candidates in input order.
func (s *Selector) FilterSlice(candidates []string) []string {
	return slices.Collect(s.Filter(slices.Values(candidates)))
}
