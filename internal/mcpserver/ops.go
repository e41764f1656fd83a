// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"github.com/eramitmittal/file-tools-mcp/internal/editor"
	"github.com/eramitmittal/file-tools-mcp/pkg/types"
)

// dispatch validates and coerces args per name's schema (§6) and invokes
// the matching operator on ed.
func dispatch(ed *editor.Editor, name string, args map[string]interface{}) (*types.ToolResult, *editor.OpError) {
	switch name {
	case "replace_matching_text":
		return replaceMatchingText(ed, args)
	case "delete_matching_text":
		return deleteMatchingText(ed, args)
	case "create_file":
		return createFile(ed, args)
	case "overwrite_file_content":
		return overwriteFileContent(ed, args)
	case "append_text_to_file":
		return appendTextToFile(ed, args)
	case "insert_text":
		return insertText(ed, args)
	case "move_text":
		return moveText(ed, args)
	case "move_or_rename_file":
		return moveOrRenameFile(ed, args)
	case "delete_file":
		return deleteFile(ed, args)
	default:
		return nil, editor.NewOpError(editor.KindUnexpected, "unrecognized tool: "+name)
	}
}

func replaceMatchingText(ed *editor.Editor, args map[string]interface{}) (*types.ToolResult, *editor.OpError) {
	filePath, perr := requiredString(args, "filePath")
	if perr != nil {
		return nil, perr.toOpError()
	}
	searchText, perr := requiredString(args, "searchText")
	if perr != nil {
		return nil, perr.toOpError()
	}
	replacementText, perr := requiredString(args, "replacementText")
	if perr != nil {
		return nil, perr.toOpError()
	}
	all, perr := optionalBool(args, "replaceAllOccurrencesOfSearchText", false)
	if perr != nil {
		return nil, perr.toOpError()
	}
	return ed.ReplaceMatchingText(filePath, searchText, replacementText, all)
}

func deleteMatchingText(ed *editor.Editor, args map[string]interface{}) (*types.ToolResult, *editor.OpError) {
	filePath, perr := requiredString(args, "filePath")
	if perr != nil {
		return nil, perr.toOpError()
	}
	searchText, perr := requiredString(args, "searchText")
	if perr != nil {
		return nil, perr.toOpError()
	}
	all, perr := optionalBool(args, "deleteAllOccurrencesOfSearchText", false)
	if perr != nil {
		return nil, perr.toOpError()
	}
	return ed.DeleteMatchingText(filePath, searchText, all)
}

func createFile(ed *editor.Editor, args map[string]interface{}) (*types.ToolResult, *editor.OpError) {
	filePath, perr := requiredString(args, "filePath")
	if perr != nil {
		return nil, perr.toOpError()
	}
	fileContent, perr := optionalString(args, "fileContent", "")
	if perr != nil {
		return nil, perr.toOpError()
	}
	createMissingDirectories, perr := optionalBool(args, "createMissingDirectories", false)
	if perr != nil {
		return nil, perr.toOpError()
	}
	return ed.CreateFile(filePath, fileContent, createMissingDirectories)
}

func overwriteFileContent(ed *editor.Editor, args map[string]interface{}) (*types.ToolResult, *editor.OpError) {
	filePath, perr := requiredString(args, "filePath")
	if perr != nil {
		return nil, perr.toOpError()
	}
	fileContent, perr := requiredString(args, "fileContent")
	if perr != nil {
		return nil, perr.toOpError()
	}
	return ed.OverwriteFileContent(filePath, fileContent)
}

func appendTextToFile(ed *editor.Editor, args map[string]interface{}) (*types.ToolResult, *editor.OpError) {
	filePath, perr := requiredString(args, "filePath")
	if perr != nil {
		return nil, perr.toOpError()
	}
	appendText, perr := requiredString(args, "appendText")
	if perr != nil {
		return nil, perr.toOpError()
	}
	addNewLineBeforeAppending, perr := optionalBool(args, "addNewLineBeforeAppending", true)
	if perr != nil {
		return nil, perr.toOpError()
	}
	return ed.AppendTextToFile(filePath, appendText, addNewLineBeforeAppending)
}

func insertText(ed *editor.Editor, args map[string]interface{}) (*types.ToolResult, *editor.OpError) {
	filePath, perr := requiredString(args, "filePath")
	if perr != nil {
		return nil, perr.toOpError()
	}
	textToBeInserted, perr := requiredString(args, "textToBeInserted")
	if perr != nil {
		return nil, perr.toOpError()
	}
	anchorText, perr := requiredString(args, "anchorText")
	if perr != nil {
		return nil, perr.toOpError()
	}
	pos, perr := position(args, "positionRelativeToAnchorText")
	if perr != nil {
		return nil, perr.toOpError()
	}
	blockStartMarker, perr := optionalString(args, "anchorBlockStartMarker", "")
	if perr != nil {
		return nil, perr.toOpError()
	}
	blockEndMarker, perr := optionalString(args, "anchorBlockEndMarker", "")
	if perr != nil {
		return nil, perr.toOpError()
	}
	addNewLine, perr := optionalBool(args, "addNewLine", false)
	if perr != nil {
		return nil, perr.toOpError()
	}
	return ed.InsertText(filePath, textToBeInserted, anchorText, pos, blockStartMarker, blockEndMarker, addNewLine)
}

func moveText(ed *editor.Editor, args map[string]interface{}) (*types.ToolResult, *editor.OpError) {
	filePath, perr := requiredString(args, "filePath")
	if perr != nil {
		return nil, perr.toOpError()
	}
	textToBeMoved, perr := requiredString(args, "textToBeMoved")
	if perr != nil {
		return nil, perr.toOpError()
	}
	anchorText, perr := requiredString(args, "anchorText")
	if perr != nil {
		return nil, perr.toOpError()
	}
	pos, perr := position(args, "positionRelativeToAnchorText")
	if perr != nil {
		return nil, perr.toOpError()
	}
	blockStartMarker, perr := optionalString(args, "anchorBlockStartMarker", "")
	if perr != nil {
		return nil, perr.toOpError()
	}
	blockEndMarker, perr := optionalString(args, "anchorBlockEndMarker", "")
	if perr != nil {
		return nil, perr.toOpError()
	}
	return ed.MoveText(filePath, textToBeMoved, anchorText, pos, blockStartMarker, blockEndMarker)
}

func moveOrRenameFile(ed *editor.Editor, args map[string]interface{}) (*types.ToolResult, *editor.OpError) {
	sourceFilePath, perr := requiredString(args, "sourceFilePath")
	if perr != nil {
		return nil, perr.toOpError()
	}
	targetFilePath, perr := requiredString(args, "targetFilePath")
	if perr != nil {
		return nil, perr.toOpError()
	}
	createMissingDirectories, perr := optionalBool(args, "createMissingDirectories", false)
	if perr != nil {
		return nil, perr.toOpError()
	}
	return ed.MoveOrRenameFile(sourceFilePath, targetFilePath, createMissingDirectories)
}

func deleteFile(ed *editor.Editor, args map[string]interface{}) (*types.ToolResult, *editor.OpError) {
	filePath, perr := requiredString(args, "filePath")
	if perr != nil {
		return nil, perr.toOpError()
	}
	return ed.DeleteFile(filePath)
}
