// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

// Package source produces candidate path sequences for the pathglob command:
// newline-separated input, directory trees and archive listings.
package source

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Lines yields newline-separated candidates from r.
//
// Blank lines are skipped and a trailing "\r" is trimmed. A read error is
// yielded once and ends the sequence.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		s := bufio.NewScanner(r)
		s.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for s.Scan() {
			line := strings.TrimRight(s.Text(), "\r")
			if line == "" {
				continue
			}

			if !yield(line, nil) {
				return
			}
		}

		if err := s.Err(); err != nil {
			yield("", fmt.Errorf("read candidates: %w", err))
		}
	}
}

// Values yields names without errors.
func Values(names []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, name := range names {
			if !yield(name, nil) {
				return
			}
		}
	}
}

// Paths adapts a fallible sequence to a plain one. It stops at the first error
// and stores it in errp.
func Paths(seq iter.Seq2[string, error], errp *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		for name, err := range seq {
			if err != nil {
				*errp = err
				return
			}

			if !yield(name) {
				return
			}
		}
	}
}
