// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import "strings"

// ExtensionPatterns converts an extension list to floating "*.ext" patterns.
//
// Accepted forms are "txt", ".txt" and "*.txt". Empty values are skipped and
// order is kept. Case is kept too, since matching is case-sensitive.
func ExtensionPatterns(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		if ext == "" {
			continue
		}

		out = append(out, "*."+ext)
	}

	return out
}
