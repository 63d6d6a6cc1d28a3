// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package source

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/woozymasta/pathglob"
)

var (
	zipMagic   = []byte("PK\x03\x04")
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte("BZh")
)

// Archive returns sorted member names of a zip or tar archive. Tar archives
// may be gzip or bzip2 compressed. Directory members carry a trailing "/".
func Archive(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat archive: %w", err)
	}

	magic := make([]byte, 4)
	n, err := io.ReadFull(f, magic)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read archive header: %w", err)
	}

	magic = magic[:n]
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind archive: %w", err)
	}

	var names []string
	switch {
	case bytes.HasPrefix(magic, zipMagic):
		names, err = zipNames(f, info.Size())
	case bytes.HasPrefix(magic, gzipMagic):
		var gz *gzip.Reader
		gz, err = gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		defer func() { _ = gz.Close() }()

		names, err = tarNames(gz)
	case bytes.HasPrefix(magic, bzip2Magic):
		names, err = tarNames(bzip2.NewReader(f))
	default:
		names, err = tarNames(f)
	}

	if err != nil {
		return nil, fmt.Errorf("list archive %s: %w", path, err)
	}

	slices.Sort(names)
	return names, nil
}

// zipNames lists zip members. Zip directory names already end with "/".
func zipNames(r io.ReaderAt, size int64) ([]string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}

	return names, nil
}

// tarNames lists tar members, marking directories with a trailing "/".
func tarNames(r io.Reader) ([]string, error) {
	tr := tar.NewReader(r)

	var names []string
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return names, nil
		}
		if err != nil {
			return nil, err
		}

		name := hdr.Name
		if hdr.Typeflag == tar.TypeDir {
			name = pathglob.DirEntryPath(name)
		}

		names = append(names, name)
	}
}
