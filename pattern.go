// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"strings"

	"github.com/gobwas/glob"
)

const (
	// separator is the only recognized path separator.
	separator = '/'
	// recursiveToken is the segment spelling of the recursive wildcard.
	recursiveToken = "**"
	// globMeta lists bytes that make a segment need the wildcard compiler.
	globMeta = `*?[`
)

// Compile parses a path glob into a reusable Pattern.
//
// Syntax:
//   - a leading "/" anchors the pattern at the first candidate segment
//   - a trailing "/" only accepts directory entries or their descendants
//   - "**" as a whole segment matches zero or more path segments
//   - any other segment is a shell wildcard ("*", "?", "[...]", "[!...]")
//     matched against exactly one path segment; "{", "}" and "\" are literal
//
// The empty pattern and "/" match every candidate. Consecutive "**" segments
// collapse into one, and a trailing "/**" behaves like a trailing "/".
// Malformed wildcard syntax returns *PatternError.
func Compile(pattern string) (*Pattern, error) {
	p := &Pattern{source: pattern}

	rest := pattern
	if after, ok := strings.CutPrefix(rest, "/"); ok {
		p.anchored = true
		rest = after
	}

	if before, ok := strings.CutSuffix(rest, "/"); ok {
		p.dirOnly = true
		rest = before
	}

	if rest == "" {
		return p, nil
	}

	segments := make([]segment, 0, strings.Count(rest, "/")+1)
	for part := range strings.SplitSeq(rest, "/") {
		if part == recursiveToken {
			if n := len(segments); n > 0 && segments[n-1].recursive {
				continue
			}

			segments = append(segments, segment{text: part, recursive: true})
			continue
		}

		seg, err := compileSegment(part)
		if err != nil {
			return nil, &PatternError{Pattern: pattern, Segment: part, Err: err}
		}

		segments = append(segments, seg)
	}

	// "prefix/**" selects what lives under prefix, not a leaf named prefix.
	if n := len(segments); n > 1 && segments[n-1].recursive {
		segments = segments[:n-1]
		p.dirOnly = true
	}

	p.segments = segments
	return p, nil
}

// MustCompile is like Compile but panics on malformed patterns.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}

	return p
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return p.source
}

// Anchored reports whether the pattern only aligns at the first candidate segment.
func (p *Pattern) Anchored() bool {
	return p.anchored
}

// DirOnly reports whether the pattern requires a directory boundary.
func (p *Pattern) DirOnly() bool {
	return p.dirOnly
}

// Segments returns the compiled segment sources, "**" for recursive ones.
func (p *Pattern) Segments() []string {
	out := make([]string, len(p.segments))
	for i := range p.segments {
		out[i] = p.segments[i].text
	}

	return out
}

// compileSegment compiles one literal segment, skipping the wildcard
// compiler for plain names.
func compileSegment(text string) (segment, error) {
	if !strings.ContainsAny(text, globMeta) {
		return segment{text: text}, nil
	}

	g, err := glob.Compile(wildcardSource(text), separator)
	if err != nil {
		return segment{}, err
	}

	return segment{text: text, wildcard: g}, nil
}

// wildcardSource rewrites a shell wildcard segment into gobwas/glob syntax.
//
// Braces and backslashes are escaped so they stay literal, runs of "*"
// collapse into one, and a "]" right after "[" or "[!" is a class member.
func wildcardSource(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 4)

	inClass, classHead := false, false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if inClass {
			switch {
			case classHead && c == '!':
				b.WriteByte(c)
				continue
			case classHead && c == ']':
				b.WriteString(`\]`)
			case c == ']':
				inClass = false
				b.WriteByte(c)
			case c == '\\':
				b.WriteString(`\\`)
			default:
				b.WriteByte(c)
			}

			classHead = false
			continue
		}

		switch c {
		case '[':
			inClass, classHead = true, true
			b.WriteByte(c)
		case '*':
			if i > 0 && text[i-1] == '*' {
				continue
			}

			b.WriteByte(c)
		case '{', '}', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
