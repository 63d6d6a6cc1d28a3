// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import "github.com/gobwas/glob"

// Action selects which side of a Selector a rule feeds.
type Action uint8

const (
	// ActionUnknown is unset/invalid action placeholder.
	ActionUnknown Action = iota
	// ActionInclude means matching paths are selected.
	ActionInclude
	// ActionExclude means matching paths are dropped even when included.
	ActionExclude
)

// Rule is one user-visible pattern with its action.
type Rule struct {
	// Pattern is a path glob, see Compile for syntax.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Action tells whether Pattern includes or excludes.
	Action Action `json:"action" yaml:"action"`
}

// Decision is a deterministic result produced by Selector.
type Decision struct {
	// Included reports final selection.
	Included bool `json:"included" yaml:"included"`
	// Include is the first matched include pattern index, -1 when none matched.
	Include int `json:"include" yaml:"include"`
	// Exclude is the first matched exclude pattern index, -1 when none matched.
	Exclude int `json:"exclude" yaml:"exclude"`
}

// Pattern is a compiled path glob. It is immutable and safe for concurrent use.
type Pattern struct {
	// source is the pattern as passed to Compile.
	source string
	// segments are matched left to right against candidate segments.
	segments []segment
	// anchored means source starts with "/".
	anchored bool
	// dirOnly means source ends with "/" or with a trailing "/**".
	dirOnly bool
}

// segment is one "/"-delimited pattern component.
type segment struct {
	// wildcard matches text when it carries glob meta, nil for plain literals.
	wildcard glob.Glob
	// text is raw segment source.
	text string
	// recursive marks "**", zero or more whole path segments.
	recursive bool
}

// valid reports whether action value is supported.
func (a Action) valid() bool {
	return a == ActionInclude || a == ActionExclude
}

// String implements fmt.Stringer.
func (a Action) String() string {
	switch a {
	case ActionInclude:
		return "include"
	case ActionExclude:
		return "exclude"
	default:
		return "unknown"
	}
}

// match reports whether a literal segment accepts one candidate segment.
func (s *segment) match(name string) bool {
	if s.wildcard == nil {
		return name == s.text
	}

	return s.wildcard.Match(name)
}
