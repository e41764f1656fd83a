// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      interface{}   `json:"id,omitempty"`
	Result  interface{}   `json:"result,omitempty"`
	Error   *jsonrpc.Error `json:"error,omitempty"`
}

type callToolParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

// Serve runs the stdio read-dispatch-write loop until stdin closes or ctx
// is cancelled (§5 "Scheduling model": single-threaded, one request at a
// time, no suspension points beyond transport and file I/O). ctx is checked
// before each request is read; a read already blocked on stdin is not
// interrupted by cancellation.
func Serve(ctx context.Context, h *ToolHandler) error {
	decoder := json.NewDecoder(bufio.NewReader(os.Stdin))
	writer := bufio.NewWriter(os.Stdout)
	encoder := json.NewEncoder(writer)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var req rpcRequest
		if err := decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if req.Method == "notifications/initialized" {
			continue
		}

		resp := rpcResponse{JSONRPC: "2.0", ID: req.ID}

		switch req.Method {
		case "initialize":
			resp.Result = map[string]interface{}{
				"protocolVersion": "2025-06-18",
				"capabilities":    map[string]interface{}{"tools": map[string]interface{}{}},
				"serverInfo":      map[string]interface{}{"name": "file-tools-mcp", "version": "1.0.0"},
			}
		case "ping":
			resp.Result = map[string]interface{}{}
		case mcpschema.MethodToolsList:
			result, rpcErr := h.ListTools(ctx, nil)
			if rpcErr != nil {
				resp.Error = rpcErr
			} else {
				resp.Result = result
			}
		case mcpschema.MethodToolsCall:
			var params callToolParams
			if len(req.Params) > 0 {
				if err := json.Unmarshal(req.Params, &params); err != nil {
					resp.Error = jsonrpc.NewInvalidRequest(err.Error(), nil)
					break
				}
			}
			typed := &jsonrpc.TypedRequest[*mcpschema.CallToolRequest]{
				Request: &mcpschema.CallToolRequest{
					Params: mcpschema.CallToolRequestParams{
						Name:      params.Name,
						Arguments: params.Arguments,
					},
				},
			}
			result, rpcErr := h.CallTool(ctx, typed)
			if rpcErr != nil {
				resp.Error = rpcErr
			} else {
				resp.Result = result
			}
		default:
			resp.Error = jsonrpc.NewMethodNotFound("method not found: "+req.Method, nil)
		}

		if err := encoder.Encode(resp); err != nil {
			return err
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	}
}
