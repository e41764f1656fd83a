// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eramitmittal/file-tools-mcp/pkg/types"
)

func writeTemp(t *testing.T, content string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReplaceMatchingText_WhitespaceInsensitive(t *testing.T) {
	path := writeTemp(t, "  const  x  =  1;  ")
	e := &Editor{}

	_, opErr := e.ReplaceMatchingText(path, "const x=1", "let y = 2", false)
	require.Nil(t, opErr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "  let y = 2;  ", string(got))
}

func TestReplaceMatchingText_MultiMatchDisambiguation(t *testing.T) {
	path := writeTemp(t, "Only bar\nbar and foo\nonly foo no bar but could have been only bar")
	e := &Editor{}

	_, opErr := e.ReplaceMatchingText(path, "foo", "baz", false)
	require.NotNil(t, opErr)
	require.Equal(t, KindMultipleMatches, opErr.Kind)
	require.Len(t, opErr.Suggestions, 2)
}

func TestReplaceMatchingText_IdenticalTextRejected(t *testing.T) {
	path := writeTemp(t, "same same")
	e := &Editor{}

	_, opErr := e.ReplaceMatchingText(path, "same", "same", false)
	require.NotNil(t, opErr)
	require.Equal(t, KindIdenticalText, opErr.Kind)
}

func TestDeleteMatchingText_NoMatchYieldsSuggestions(t *testing.T) {
	path := writeTemp(t, "function helloWorld() {\n  console.log('hi');\n}")
	e := &Editor{}

	_, opErr := e.DeleteMatchingText(path, "console.log(hi)", false)
	require.NotNil(t, opErr)
	require.Equal(t, KindNoMatch, opErr.Kind)
	require.NotEmpty(t, opErr.Suggestions)
}

func TestMoveText_LineBoundaryBefore(t *testing.T) {
	content := "function alpha() {\n  const a = 1;\n  const b = 2;\n  const c = 3;\n}"
	path := writeTemp(t, content)
	e := &Editor{}

	_, opErr := e.MoveText(path, "const b = 2;", "const a = 1;", types.PositionBefore, "", "")
	require.Nil(t, opErr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "function alpha() {\n  const b = 2;\n  const a = 1;\n  const c = 3;\n}", string(got))
}

func TestMoveText_IntraLineAfter(t *testing.T) {
	content := "function alpha() {\n  const a = 1;\n  const b = 2;\n  const c = 3; return c;\n}"
	path := writeTemp(t, content)
	e := &Editor{}

	_, opErr := e.MoveText(path, "const b = 2;", "const c = 3;", types.PositionAfter, "", "")
	require.Nil(t, opErr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "function alpha() {\n  const a = 1;\n  \n  const c = 3;const b = 2; return c;\n}", string(got))
}

func TestMoveText_AnchorScopedToBlock(t *testing.T) {
	content := "const a = 1;\nBLOCK START\nconst a = 1;\nconst c = 3;\nBLOCK END"
	path := writeTemp(t, content)
	e := &Editor{}

	_, opErr := e.MoveText(path, "const c = 3;", "const a = 1;", types.PositionBefore, "BLOCK START", "BLOCK END")
	require.Nil(t, opErr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "const a = 1;\nBLOCK START\nconst c = 3;\nconst a = 1;\nBLOCK END", string(got))
}

func TestInsertText_BlockScoped(t *testing.T) {
	content := "header\nBLOCK START\nline1\nline2\nBLOCK END\nfooter"
	path := writeTemp(t, content)
	e := &Editor{}

	_, opErr := e.InsertText(path, "inserted line", "line1", types.PositionAfter, "BLOCK START", "BLOCK END", true)
	require.Nil(t, opErr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "header\nBLOCK START\nline1\ninserted line\nline2\nBLOCK END\nfooter", string(got))
}

func TestAppendTextToFile_SkipsNewlineWhenAlreadyPresent(t *testing.T) {
	path := writeTemp(t, "existing content\n")
	e := &Editor{}

	_, opErr := e.AppendTextToFile(path, "appended content\n", true)
	require.Nil(t, opErr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "existing content\nappended content\n", string(got))
}

func TestAppendTextToFile_AddsNewlineWhenMissing(t *testing.T) {
	path := writeTemp(t, "existing content")
	e := &Editor{}

	_, opErr := e.AppendTextToFile(path, "appended content", true)
	require.Nil(t, opErr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "existing content\nappended content", string(got))
}

func TestCreateFile_RefusesExisting(t *testing.T) {
	path := writeTemp(t, "old")
	e := &Editor{}

	_, opErr := e.CreateFile(path, "new", false)
	require.NotNil(t, opErr)
	require.Equal(t, KindTargetExists, opErr.Kind)
}

func TestCreateFile_CreatesMissingDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "new.txt")
	e := &Editor{}

	_, opErr := e.CreateFile(path, "hello", true)
	require.Nil(t, opErr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello", string(got))
}

func TestCreateFile_MissingDirectoryWithoutFlagFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "new.txt")
	e := &Editor{}

	_, opErr := e.CreateFile(path, "hello", false)
	require.NotNil(t, opErr)
	require.Equal(t, KindDirectoryMissing, opErr.Kind)
}

func TestDeleteFile_RemovesFile(t *testing.T) {
	path := writeTemp(t, "content")
	e := &Editor{}

	_, opErr := e.DeleteFile(path)
	require.Nil(t, opErr)

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestMoveOrRenameFile_RefusesExistingTarget(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("b"), 0o644))

	e := &Editor{}
	_, opErr := e.MoveOrRenameFile(src, dst, false)
	require.NotNil(t, opErr)
	require.Equal(t, KindTargetExists, opErr.Kind)
}

func TestDryRun_DoesNotWrite(t *testing.T) {
	path := writeTemp(t, "const x = 1;")
	e := &Editor{DryRun: true}

	result, opErr := e.ReplaceMatchingText(path, "const x = 1;", "const y = 2;", false)
	require.Nil(t, opErr)
	require.Contains(t, result.Message, "dry run")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "const x = 1;", string(got))
}
