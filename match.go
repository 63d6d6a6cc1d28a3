// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

// smallCandidateDepth bounds candidates whose reach rows fit on the stack.
const smallCandidateDepth = 31

// Match reports whether candidate path is selected by the pattern.
//
// A trailing "/" in path marks an explicit directory entry. A pattern without
// directory requirement also selects every descendant of a matched entry.
func (p *Pattern) Match(path string) bool {
	if len(p.segments) == 0 {
		return true
	}

	segs, isDir := splitCandidate(path)
	return p.matchSegments(segs, isDir)
}

// matchSegments evaluates the pattern against split candidate segments.
//
// reach[i] reports that the pattern prefix consumed so far can end right
// before candidate segment i. Rows are advanced one pattern segment at a time,
// which is the (segments+1)x(n+1) table of the recursive search without the
// backtracking cost.
func (p *Pattern) matchSegments(cs []string, isDir bool) bool {
	if len(p.segments) == 0 {
		return true
	}

	n := len(cs)

	var stack [2 * (smallCandidateDepth + 1)]bool
	var buf []bool
	if n <= smallCandidateDepth {
		buf = stack[:2*(n+1)]
	} else {
		buf = make([]bool, 2*(n+1))
	}

	cur, next := buf[:n+1], buf[n+1:]
	if p.anchored {
		cur[0] = true
	} else {
		// Floating patterns may start at any segment, including the end.
		for i := range cur {
			cur[i] = true
		}
	}

	for si := range p.segments {
		seg := &p.segments[si]
		clear(next)

		reached := false
		if seg.recursive {
			// "**" extends every reachable start to all later boundaries, so
			// only the lowest reachable index matters.
			first := -1
			for i, ok := range cur {
				if ok {
					first = i
					break
				}
			}

			if first >= 0 {
				for i := first; i <= n; i++ {
					next[i] = true
				}

				reached = true
			}
		} else {
			for i := 0; i < n; i++ {
				if cur[i] && seg.match(cs[i]) {
					next[i+1] = true
					reached = true
				}
			}
		}

		if !reached {
			return false
		}

		cur, next = next, cur
	}

	if !p.dirOnly {
		return true
	}

	// Directory patterns need leftover segments (a descendant) or the
	// candidate itself being a directory entry.
	for e := 0; e < n; e++ {
		if cur[e] {
			return true
		}
	}

	return cur[n] && isDir
}
