// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package editor implements the nine edit operators (§4.7) that read a
// file's Unicode scalar vector, run it through the matcher, and splice a
// mutation back in.
package editor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eramitmittal/file-tools-mcp/internal/binaryguard"
	"github.com/eramitmittal/file-tools-mcp/internal/scalarvec"
)

// readRaw opens filePath, refuses it if it's missing or looks binary, and
// returns its content as a Unicode scalar vector.
func readRaw(filePath string) ([]rune, *OpError) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, newError(KindPathNotFound, fmt.Sprintf("file not found: %s", filePath))
	}
	if binaryguard.IsBinary(filePath) {
		return nil, newError(KindBinaryContent, fmt.Sprintf("refusing to edit binary file: %s", filePath))
	}
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, newError(KindUnexpected, err.Error())
	}
	return scalarvec.Decode(string(content)), nil
}

// atomicWrite writes data to a temp file in the target's directory, then
// renames it into place, preserving the original file's permissions.
// Adapted from the teacher's internal/editor/editor.go:atomicWrite.
func atomicWrite(path string, raw []rune) *OpError {
	dir := filepath.Dir(path)
	data := []byte(scalarvec.Encode(raw))

	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	f, err := os.CreateTemp(dir, ".file-tools-mcp-*.tmp")
	if err != nil {
		return newError(KindUnexpected, fmt.Sprintf("creating temp file: %v", err))
	}
	tmpPath := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return newError(KindUnexpected, fmt.Sprintf("writing temp file: %v", err))
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return newError(KindUnexpected, fmt.Sprintf("closing temp file: %v", err))
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return newError(KindUnexpected, fmt.Sprintf("setting permissions: %v", err))
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return newError(KindUnexpected, fmt.Sprintf("renaming temp file: %v", err))
	}
	return nil
}

// splice removes raw[start:end) and inserts replacement at start.
func splice(raw []rune, start, end int, replacement []rune) []rune {
	out := make([]rune, 0, len(raw)-(end-start)+len(replacement))
	out = append(out, raw[:start]...)
	out = append(out, replacement...)
	out = append(out, raw[end:]...)
	return out
}
