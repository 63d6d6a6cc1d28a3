// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"errors"
	"fmt"
)

// Sentinel errors for pathglob operations.
var (
	// ErrInvalidPattern indicates malformed single-segment wildcard syntax.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidRule indicates a rule with unsupported action.
	ErrInvalidRule = errors.New("invalid rule")
)

// PatternError reports a pattern that could not be compiled.
//
// It matches ErrInvalidPattern with errors.Is and also unwraps to the
// underlying wildcard compiler error.
type PatternError struct {
	// Pattern is the full source pattern.
	Pattern string
	// Segment is the "/"-delimited segment that failed to compile.
	Segment string
	// Err is the wildcard compiler error.
	Err error
}

// Error implements error.
func (e *PatternError) Error() string {
	if e.Segment == "" || e.Segment == e.Pattern {
		return fmt.Sprintf("%s %q: %v", ErrInvalidPattern, e.Pattern, e.Err)
	}

	return fmt.Sprintf("%s %q: segment %q: %v", ErrInvalidPattern, e.Pattern, e.Segment, e.Err)
}

// Unwrap exposes ErrInvalidPattern and the compiler error.
func (e *PatternError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidPattern}
	}

	return []error{ErrInvalidPattern, e.Err}
}
