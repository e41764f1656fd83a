// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package mcpserver exposes the nine file-editing operators over the MCP
// tools/list and tools/call methods.
package mcpserver

import (
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// paramSpec describes one tool parameter for the tools/list schema.
// Request arguments are validated and coerced by the per-tool functions in
// ops.go, not from this table.
type paramSpec struct {
	name        string
	jsonType    string // "string" or "boolean"
	description string
	required    bool
	defaultBool bool
}

type toolSpec struct {
	name        string
	description string
	params      []paramSpec
}

var toolSpecs = []toolSpec{
	{
		name:        "replace_matching_text",
		description: "Replace text in a file located by whitespace-insensitive fuzzy matching.",
		params: []paramSpec{
			{name: "filePath", jsonType: "string", required: true, description: "Path of the file to edit."},
			{name: "searchText", jsonType: "string", required: true, description: "Text to locate."},
			{name: "replacementText", jsonType: "string", required: true, description: "Text to substitute in place of the match."},
			{name: "replaceAllOccurrencesOfSearchText", jsonType: "boolean", description: "Replace every exact match found (at most the first three) instead of requiring a single match.", defaultBool: false},
		},
	},
	{
		name:        "delete_matching_text",
		description: "Delete text in a file located by whitespace-insensitive fuzzy matching.",
		params: []paramSpec{
			{name: "filePath", jsonType: "string", required: true, description: "Path of the file to edit."},
			{name: "searchText", jsonType: "string", required: true, description: "Text to locate and remove."},
			{name: "deleteAllOccurrencesOfSearchText", jsonType: "boolean", description: "Delete every exact match found (at most the first three) instead of requiring a single match.", defaultBool: false},
		},
	},
	{
		name:        "create_file",
		description: "Create a new file with the given content.",
		params: []paramSpec{
			{name: "filePath", jsonType: "string", required: true, description: "Path of the file to create."},
			{name: "fileContent", jsonType: "string", description: "Initial file content.", defaultBool: false},
			{name: "createMissingDirectories", jsonType: "boolean", description: "Create parent directories that do not yet exist.", defaultBool: false},
		},
	},
	{
		name:        "overwrite_file_content",
		description: "Replace a file's entire content.",
		params: []paramSpec{
			{name: "filePath", jsonType: "string", required: true, description: "Path of the file to overwrite."},
			{name: "fileContent", jsonType: "string", required: true, description: "New file content."},
		},
	},
	{
		name:        "append_text_to_file",
		description: "Append text to the end of a file.",
		params: []paramSpec{
			{name: "filePath", jsonType: "string", required: true, description: "Path of the file to edit."},
			{name: "appendText", jsonType: "string", required: true, description: "Text to append."},
			{name: "addNewLineBeforeAppending", jsonType: "boolean", description: "Insert the file's line-ending literal before appendText unless the file already ends with it.", defaultBool: true},
		},
	},
	{
		name:        "insert_text",
		description: "Insert text relative to an anchor located by fuzzy matching, optionally scoped to a marker-delimited block.",
		params: []paramSpec{
			{name: "filePath", jsonType: "string", required: true, description: "Path of the file to edit."},
			{name: "textToBeInserted", jsonType: "string", required: true, description: "Text to insert."},
			{name: "anchorText", jsonType: "string", required: true, description: "Text to anchor the insertion point to."},
			{name: "positionRelativeToAnchorText", jsonType: "string", required: true, description: "\"before\" or \"after\"."},
			{name: "anchorBlockStartMarker", jsonType: "string", description: "First occurrence scopes the start of the search window."},
			{name: "anchorBlockEndMarker", jsonType: "string", description: "Last occurrence after the start marker scopes the end of the search window."},
			{name: "addNewLine", jsonType: "boolean", description: "Place the inserted text on its own line relative to the anchor.", defaultBool: false},
		},
	},
	{
		name:        "move_text",
		description: "Move text located by fuzzy matching to a position relative to an anchor, optionally scoped to a marker-delimited block.",
		params: []paramSpec{
			{name: "filePath", jsonType: "string", required: true, description: "Path of the file to edit."},
			{name: "textToBeMoved", jsonType: "string", required: true, description: "Text to relocate."},
			{name: "anchorText", jsonType: "string", required: true, description: "Text to anchor the destination to."},
			{name: "positionRelativeToAnchorText", jsonType: "string", required: true, description: "\"before\" or \"after\"."},
			{name: "anchorBlockStartMarker", jsonType: "string", description: "First occurrence scopes the anchor search window."},
			{name: "anchorBlockEndMarker", jsonType: "string", description: "Last occurrence after the start marker scopes the anchor search window."},
		},
	},
	{
		name:        "move_or_rename_file",
		description: "Move or rename a file on disk.",
		params: []paramSpec{
			{name: "sourceFilePath", jsonType: "string", required: true, description: "Existing file path."},
			{name: "targetFilePath", jsonType: "string", required: true, description: "Destination file path."},
			{name: "createMissingDirectories", jsonType: "boolean", description: "Create parent directories that do not yet exist.", defaultBool: false},
		},
	},
	{
		name:        "delete_file",
		description: "Delete a file from disk.",
		params: []paramSpec{
			{name: "filePath", jsonType: "string", required: true, description: "Path of the file to delete."},
		},
	},
}

func toolSpecByName(name string) *toolSpec {
	for i := range toolSpecs {
		if toolSpecs[i].name == name {
			return &toolSpecs[i]
		}
	}
	return nil
}

func mcpToolFromSpec(spec *toolSpec) mcpschema.Tool {
	props := make(mcpschema.ToolInputSchemaProperties, len(spec.params))
	var required []string
	for _, p := range spec.params {
		props[p.name] = map[string]interface{}{
			"type":        p.jsonType,
			"description": p.description,
		}
		if p.required {
			required = append(required, p.name)
		}
	}

	desc := spec.description
	return mcpschema.Tool{
		Name:        spec.name,
		Description: &desc,
		InputSchema: mcpschema.ToolInputSchema{
			Type:       "object",
			Properties: props,
			Required:   required,
		},
	}
}

func listToolDefinitions() []mcpschema.Tool {
	tools := make([]mcpschema.Tool, 0, len(toolSpecs))
	for i := range toolSpecs {
		tools = append(tools, mcpToolFromSpec(&toolSpecs[i]))
	}
	return tools
}
