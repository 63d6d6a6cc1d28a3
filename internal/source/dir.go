// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package source

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/woozymasta/pathglob"
)

// errStopWalk ends a walk early when the consumer stops pulling.
var errStopWalk = errors.New("stop walk")

// Dir yields every entry below root, relative to it and "/"-separated.
// Directories carry a trailing "/" and root itself is omitted.
func Dir(root string) iter.Seq2[string, error] {
	return FS(os.DirFS(root))
}

// FS yields every entry of fsys like Dir.
func FS(fsys fs.FS) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := doublestar.GlobWalk(fsys, "**", func(path string, d fs.DirEntry) error {
			if path == "." || path == "" {
				return nil
			}

			if d.IsDir() {
				path = pathglob.DirEntryPath(path)
			}

			if !yield(path, nil) {
				return errStopWalk
			}

			return nil
		}, doublestar.WithFailOnIOErrors())

		if err != nil && !errors.Is(err, errStopWalk) {
			yield("", fmt.Errorf("walk candidates: %w", err))
		}
	}
}
