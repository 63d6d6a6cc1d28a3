// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

/*
Package pathglob selects subsets of a known list of candidate paths with
shell-like glob patterns.

Candidates are plain strings using "/" as separator. A trailing "/" marks an
explicit directory entry, so "foo" and "foo/" are different candidates. The
package never touches the filesystem; callers supply the flattened list
(archive members, install layout entries, source trees) to test.

Pattern syntax:
  - "/foo" is anchored and only aligns with the first candidate segment
  - "foo" floats and may align with any segment
  - "foo/" requires a directory: the "foo/" entry itself or anything under it
  - "**" as a whole segment matches zero or more segments, so it bridges any
    depth between "a" and "b" in "a/" + "**" + "/b"
  - "*", "?", "[a-z]" and "[!a]" match inside exactly one segment; "{", "}"
    and "\" are ordinary characters
  - "" and "/" match everything

A pattern without trailing "/" also selects every descendant of a matched
entry: "foo" selects "foo", "foo/", "foo/bar" and "bar/foo".

Basic flow:
  - compile patterns (`Compile`, `CompileAll`)
  - filter lazily (`Filter`, `Set.Filter`, `Select`) or by slice (`FilterSlice`)
  - for include/exclude workflows build a `Selector` from `Rule`s, optionally
    parsed from text (`ParseRules`) or files (`LoadRulesFile`)
  - config values that are a string or a list decode into `Patterns`

Compiled patterns, sets and selectors are immutable and safe for concurrent
use. Malformed wildcard syntax fails at compile time with *PatternError;
matching itself never fails.
*/
package pathglob
