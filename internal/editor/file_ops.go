// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package editor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eramitmittal/file-tools-mcp/internal/lineending"
	"github.com/eramitmittal/file-tools-mcp/internal/scalarvec"
	"github.com/eramitmittal/file-tools-mcp/pkg/types"
)

// OverwriteFileContent implements the overwrite operator (§4.7): flat match
// logic is not used, the file's content is replaced wholesale.
func (e *Editor) OverwriteFileContent(filePath, fileContent string) (*types.ToolResult, *OpError) {
	before, opErr := readRaw(filePath)
	if opErr != nil {
		return nil, opErr
	}

	after := scalarvec.Decode(fileContent)
	diff, opErr := e.commit(filePath, before, after)
	if opErr != nil {
		return nil, opErr
	}
	return &types.ToolResult{Message: resultMessage(e.DryRun, diff, "overwrote %s", filePath)}, nil
}

// AppendTextToFile implements the append operator (§4.7). The line-ending
// literal is added before appendText only when addNewLineBeforeAppending is
// set and the file does not already end with that literal.
func (e *Editor) AppendTextToFile(filePath, appendText string, addNewLineBeforeAppending bool) (*types.ToolResult, *OpError) {
	before, opErr := readRaw(filePath)
	if opErr != nil {
		return nil, opErr
	}

	toAppend := []rune(appendText)
	if addNewLineBeforeAppending {
		le := []rune(lineending.Detect(string(before)))
		if !hasSuffixRunes(before, le) {
			toAppend = append(append([]rune{}, le...), toAppend...)
		}
	}

	after := append(append([]rune{}, before...), toAppend...)
	diff, opErr := e.commit(filePath, before, after)
	if opErr != nil {
		return nil, opErr
	}
	return &types.ToolResult{Message: resultMessage(e.DryRun, diff, "appended text to %s", filePath)}, nil
}

func hasSuffixRunes(raw, suffix []rune) bool {
	if len(suffix) > len(raw) {
		return false
	}
	for i, r := range suffix {
		if raw[len(raw)-len(suffix)+i] != r {
			return false
		}
	}
	return true
}

// CreateFile implements the create operator (§4.7). It refuses to
// overwrite an existing file and requires the parent directory to exist
// unless createMissingDirectories is set.
func (e *Editor) CreateFile(filePath, fileContent string, createMissingDirectories bool) (*types.ToolResult, *OpError) {
	if _, err := os.Stat(filePath); err == nil {
		return nil, newError(KindTargetExists, fmt.Sprintf("file already exists: %s", filePath))
	}

	dir := filepath.Dir(filePath)
	if _, err := os.Stat(dir); err != nil {
		if !createMissingDirectories {
			return nil, newError(KindDirectoryMissing, fmt.Sprintf("parent directory does not exist: %s", dir))
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, newError(KindUnexpected, err.Error())
		}
	}

	if e.DryRun {
		return &types.ToolResult{Message: fmt.Sprintf("created %s (dry run)", filePath)}, nil
	}
	if opErr := atomicWrite(filePath, scalarvec.Decode(fileContent)); opErr != nil {
		return nil, opErr
	}
	return &types.ToolResult{Message: fmt.Sprintf("created %s", filePath)}, nil
}

// MoveOrRenameFile implements the rename operator (§4.7).
func (e *Editor) MoveOrRenameFile(sourceFilePath, targetFilePath string, createMissingDirectories bool) (*types.ToolResult, *OpError) {
	if _, err := os.Stat(sourceFilePath); err != nil {
		return nil, newError(KindPathNotFound, fmt.Sprintf("file not found: %s", sourceFilePath))
	}
	if _, err := os.Stat(targetFilePath); err == nil {
		return nil, newError(KindTargetExists, fmt.Sprintf("file already exists: %s", targetFilePath))
	}

	dir := filepath.Dir(targetFilePath)
	if _, err := os.Stat(dir); err != nil {
		if !createMissingDirectories {
			return nil, newError(KindDirectoryMissing, fmt.Sprintf("parent directory does not exist: %s", dir))
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, newError(KindUnexpected, err.Error())
		}
	}

	if e.DryRun {
		return &types.ToolResult{Message: fmt.Sprintf("moved %s to %s (dry run)", sourceFilePath, targetFilePath)}, nil
	}
	if err := os.Rename(sourceFilePath, targetFilePath); err != nil {
		return nil, newError(KindUnexpected, err.Error())
	}
	return &types.ToolResult{Message: fmt.Sprintf("moved %s to %s", sourceFilePath, targetFilePath)}, nil
}

// DeleteFile implements the delete-file operator (§4.7). The binary-file
// guard does not run before this operation (§4.9).
func (e *Editor) DeleteFile(filePath string) (*types.ToolResult, *OpError) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, newError(KindPathNotFound, fmt.Sprintf("file not found: %s", filePath))
	}

	if e.DryRun {
		return &types.ToolResult{Message: fmt.Sprintf("deleted %s (dry run)", filePath)}, nil
	}
	if err := os.Remove(filePath); err != nil {
		return nil, newError(KindUnexpected, err.Error())
	}
	return &types.ToolResult{Message: fmt.Sprintf("deleted %s", filePath)}, nil
}
