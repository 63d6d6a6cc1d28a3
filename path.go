// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import "strings"

// splitCandidate splits candidate path into segments and reports whether it is
// an explicit directory entry (trailing "/").
//
// No normalization happens: "./", "..", repeated slashes and case are kept,
// so "a//b" yields an empty middle segment.
func splitCandidate(path string) ([]string, bool) {
	isDir := strings.HasSuffix(path, "/")
	if isDir {
		path = path[:len(path)-1]
	}

	if path == "" {
		return nil, isDir
	}

	return strings.Split(path, "/"), isDir
}

// DirEntryPath returns name as a directory entry candidate (trailing "/").
func DirEntryPath(name string) string {
	if strings.HasSuffix(name, "/") {
		return name
	}

	return name + "/"
}
