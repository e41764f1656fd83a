// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package binaryguard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsBinary_BlockedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.png")
	require.NoError(t, os.WriteFile(path, []byte("not really png data"), 0o644))
	require.True(t, IsBinary(path))
}

func TestIsBinary_EmptyFileIsNotBinary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	require.False(t, IsBinary(path))
}

func TestIsBinary_MagicBytesDetected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "archive.dat")
	require.NoError(t, os.WriteFile(path, []byte{0x50, 0x4B, 0x03, 0x04, 'x', 'y'}, 0o644))
	require.True(t, IsBinary(path))
}

func TestIsBinary_NulByteDetected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weird.dat")
	require.NoError(t, os.WriteFile(path, []byte("abc\x00def"), 0o644))
	require.True(t, IsBinary(path))
}

func TestIsBinary_PlainTextIsNotBinary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello, world\n"), 0o644))
	require.False(t, IsBinary(path))
}

func TestIsBinary_MissingFileIsBinary(t *testing.T) {
	require.True(t, IsBinary(filepath.Join(t.TempDir(), "nope.txt")))
}
