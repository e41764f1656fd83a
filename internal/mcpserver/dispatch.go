// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"

	"github.com/eramitmittal/file-tools-mcp/internal/editor"
	"github.com/eramitmittal/file-tools-mcp/pkg/types"
)

// ToolHandler exposes the nine file-editing operators via MCP tools/list
// and tools/call.
type ToolHandler struct {
	editor *editor.Editor
}

// NewToolHandler returns a handler that dispatches onto ed.
func NewToolHandler(ed *editor.Editor) *ToolHandler {
	return &ToolHandler{editor: ed}
}

// ---------------- mcp-protocol/server.Operations ----------------

func (h *ToolHandler) Initialize(_ context.Context, _ *mcpschema.InitializeRequestParams, _ *mcpschema.InitializeResult) {
}

func (h *ToolHandler) ListResources(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.ListResourcesRequest]) (*mcpschema.ListResourcesResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("resources/list not implemented", nil)
}

func (h *ToolHandler) ListResourceTemplates(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.ListResourceTemplatesRequest]) (*mcpschema.ListResourceTemplatesResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("resources/templates/list not implemented", nil)
}

func (h *ToolHandler) ReadResource(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.ReadResourceRequest]) (*mcpschema.ReadResourceResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("resources/read not implemented", nil)
}

func (h *ToolHandler) Subscribe(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.SubscribeRequest]) (*mcpschema.SubscribeResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("subscribe not implemented", nil)
}

func (h *ToolHandler) Unsubscribe(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.UnsubscribeRequest]) (*mcpschema.UnsubscribeResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("unsubscribe not implemented", nil)
}

func (h *ToolHandler) ListTools(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.ListToolsRequest]) (*mcpschema.ListToolsResult, *jsonrpc.Error) {
	return &mcpschema.ListToolsResult{Tools: listToolDefinitions()}, nil
}

func (h *ToolHandler) CallTool(_ context.Context, req *jsonrpc.TypedRequest[*mcpschema.CallToolRequest]) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	if req == nil || req.Request == nil {
		return nil, jsonrpc.NewInvalidRequest("missing request", nil)
	}
	name := strings.TrimSpace(req.Request.Params.Name)
	if name == "" {
		return nil, jsonrpc.NewInvalidRequest("missing tool name", nil)
	}

	spec := toolSpecByName(name)
	if spec == nil {
		return nil, mcpschema.NewUnknownTool(name)
	}

	args := map[string]interface{}(req.Request.Params.Arguments)
	if args == nil {
		args = map[string]interface{}{}
	}

	result, opErr := dispatch(h.editor, name, args)
	if opErr != nil {
		return errorResult(opErr), nil
	}
	return successResult(result), nil
}

func (h *ToolHandler) ListPrompts(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.ListPromptsRequest]) (*mcpschema.ListPromptsResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("prompts/list not implemented", nil)
}

func (h *ToolHandler) GetPrompt(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.GetPromptRequest]) (*mcpschema.GetPromptResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("prompts/get not implemented", nil)
}

func (h *ToolHandler) Complete(_ context.Context, _ *jsonrpc.TypedRequest[*mcpschema.CompleteRequest]) (*mcpschema.CompleteResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("complete not implemented", nil)
}

// ---------------- mcp-protocol/server.Handler ----------------

func (h *ToolHandler) OnNotification(_ context.Context, _ *jsonrpc.Notification) {}

func (h *ToolHandler) Implements(method string) bool {
	switch method {
	case mcpschema.MethodToolsList, mcpschema.MethodToolsCall:
		return true
	default:
		return false
	}
}

// ---------------- response construction ----------------

func errorResult(opErr *editor.OpError) *mcpschema.CallToolResult {
	isErr := true
	structured := map[string]interface{}{"message": opErr.Message}
	if len(opErr.Suggestions) > 0 {
		structured["SuggestedParameterValues"] = opErr.Suggestions
	}
	return &mcpschema.CallToolResult{
		IsError:           &isErr,
		Content:           []mcpschema.CallToolResultContentElem{mcpschema.TextContent{Type: "text", Text: marshalText(structured)}},
		StructuredContent: structured,
	}
}

func successResult(result *types.ToolResult) *mcpschema.CallToolResult {
	structured := map[string]interface{}{"message": result.Message}
	if len(result.SuggestedParameterValues) > 0 {
		structured["SuggestedParameterValues"] = result.SuggestedParameterValues
	}
	return &mcpschema.CallToolResult{
		Content:           []mcpschema.CallToolResultContentElem{mcpschema.TextContent{Type: "text", Text: marshalText(structured)}},
		StructuredContent: structured,
	}
}

func marshalText(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
