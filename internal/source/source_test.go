// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package source

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, seq func(func(string, error) bool)) []string {
	t.Helper()

	var out []string
	for name, err := range seq {
		require.NoError(t, err)
		out = append(out, name)
	}

	return out
}

func TestLines(t *testing.T) {
	t.Parallel()

	got := collect(t, Lines(strings.NewReader("foo\r\n\nfoo/\nfoo/bar\n\n")))
	assert.Equal(t, []string{"foo", "foo/", "foo/bar"}, got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestLinesReadError(t *testing.T) {
	t.Parallel()

	var srcErr error
	got := slices.Collect(Paths(Lines(io.MultiReader(strings.NewReader("a\nb\n"), failingReader{})), &srcErr))

	assert.Equal(t, []string{"a", "b"}, got)
	require.Error(t, srcErr)
	assert.Contains(t, srcErr.Error(), "boom")
}

func TestPathsStopsEarly(t *testing.T) {
	t.Parallel()

	var srcErr error
	for name := range Paths(Values([]string{"a", "b", "c"}), &srcErr) {
		assert.Equal(t, "a", name)
		break
	}

	assert.NoError(t, srcErr)
}

func TestFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"include/lib.h":       {Data: []byte("h")},
		"src/main.c":          {Data: []byte("c")},
		"src/empty":           {Mode: os.ModeDir},
		"src/deep/nested.txt": {Data: []byte("t")},
	}

	got := collect(t, FS(fsys))
	slices.Sort(got)

	assert.Equal(t, []string{
		"include/", "include/lib.h",
		"src/", "src/deep/", "src/deep/nested.txt", "src/empty/", "src/main.c",
	}, got)
}

func TestDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "b", "f.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "top.txt"), []byte("x"), 0o600))

	got := collect(t, Dir(root))
	slices.Sort(got)
	assert.Equal(t, []string{"a/", "a/b/", "a/b/f.txt", "top.txt"}, got)

	// Early stop must not surface the internal stop error.
	for name, err := range Dir(root) {
		require.NoError(t, err)
		assert.NotEmpty(t, name)
		break
	}
}

func TestArchiveTarGz(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pkg.tar.gz")
	f, err := os.Create(path)
	require.NoError(t, err)

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	for _, hdr := range []*tar.Header{
		{Name: "pkg-1.0/src/main.c", Mode: 0o644, Size: 1, Typeflag: tar.TypeReg},
		{Name: "pkg-1.0", Mode: 0o755, Typeflag: tar.TypeDir},
		{Name: "pkg-1.0/src/", Mode: 0o755, Typeflag: tar.TypeDir},
		{Name: "pkg-1.0/README", Mode: 0o644, Size: 1, Typeflag: tar.TypeReg},
	} {
		require.NoError(t, tw.WriteHeader(hdr))
		if hdr.Size > 0 {
			_, err := tw.Write([]byte("x"))
			require.NoError(t, err)
		}
	}

	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	names, err := Archive(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"pkg-1.0/", "pkg-1.0/README", "pkg-1.0/src/", "pkg-1.0/src/main.c"}, names)
}

func TestArchivePlainTar(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pkg.tar")
	f, err := os.Create(path)
	require.NoError(t, err)

	tw := tar.NewWriter(f)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "b/", Mode: 0o755, Typeflag: tar.TypeDir}))
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "a", Mode: 0o644, Typeflag: tar.TypeReg}))
	require.NoError(t, tw.Close())
	require.NoError(t, f.Close())

	names, err := Archive(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b/"}, names)
}

func TestArchiveZip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pkg.zip")
	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	for _, name := range []string{"pkg/src/main.c", "pkg/", "pkg/src/"} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		if !strings.HasSuffix(name, "/") {
			_, err = w.Write([]byte("x"))
			require.NoError(t, err)
		}
	}

	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	names, err := Archive(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"pkg/", "pkg/src/", "pkg/src/main.c"}, names)
}

func TestArchiveErrors(t *testing.T) {
	t.Parallel()

	_, err := Archive(filepath.Join(t.TempDir(), "missing.tar"))
	require.ErrorIs(t, err, os.ErrNotExist)

	garbage := filepath.Join(t.TempDir(), "garbage.tar")
	require.NoError(t, os.WriteFile(garbage, []byte(strings.Repeat("not a tar ", 100)), 0o600))

	_, err = Archive(garbage)
	require.Error(t, err)
}
