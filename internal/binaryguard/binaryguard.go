// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package binaryguard decides whether a file should be refused for
// text-editing operations because its content is (or looks like) binary.
package binaryguard

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// blockedExtensions is a fixed set of extensions treated as binary without
// inspecting content.
var blockedExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true, ".ico": true,
	".zip": true, ".gz": true, ".tar": true, ".7z": true, ".rar": true,
	".pdf": true, ".exe": true, ".dll": true, ".so": true, ".dylib": true,
	".bin": true, ".class": true, ".o": true, ".a": true,
	".mp3": true, ".mp4": true, ".mov": true, ".avi": true, ".wav": true,
	".sqlite": true, ".db": true, ".woff": true, ".woff2": true, ".ttf": true, ".otf": true,
}

// magicSignature is a fixed leading byte sequence that marks a binary file
// format; the format is named in the comment beside each table entry.
type magicSignature struct {
	bytes []byte
}

var magicTable = []magicSignature{
	{bytes: []byte{0x50, 0x4B, 0x03, 0x04}},       // ZIP
	{bytes: []byte{0x1F, 0x8B}},                   // GZIP
	{bytes: []byte{0xFF, 0xD8, 0xFF}},             // JPEG
	{bytes: []byte{0x89, 0x50, 0x4E, 0x47}},       // PNG
	{bytes: []byte{0x25, 0x50, 0x44, 0x46}},       // PDF
	{bytes: []byte{0x4D, 0x5A}},                   // PE/EXE
	{bytes: []byte{0x7F, 0x45, 0x4C, 0x46}},       // ELF
}

const probeSize = 8192

// IsBinary implements §4.9: extension blocklist, empty-file exemption,
// magic-byte probe, then a NUL-byte scan over the leading probeSize bytes.
// Any I/O error while checking is treated as binary, so callers never
// mistake an unreadable file for a safe one to edit.
func IsBinary(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if blockedExtensions[ext] {
		return true
	}

	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return true
	}
	if info.Size() == 0 {
		return false
	}

	buf := make([]byte, probeSize)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return true
	}
	prefix := buf[:n]

	for _, sig := range magicTable {
		if bytes.HasPrefix(prefix, sig.bytes) {
			return true
		}
	}
	return bytes.IndexByte(prefix, 0x00) >= 0
}
