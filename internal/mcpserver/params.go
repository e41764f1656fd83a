// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eramitmittal/file-tools-mcp/internal/editor"
	"github.com/eramitmittal/file-tools-mcp/pkg/types"
)

// paramError reports a parameter-schema violation (missing required
// parameter, wrong type, unrecognized enum value). It is recovered into a
// structured CallToolResult, never a transport-level error.
type paramError struct {
	path string
}

func (e *paramError) Error() string {
	return e.path
}

func requiredString(args map[string]interface{}, name string) (string, *paramError) {
	v, ok := args[name]
	if !ok || v == nil {
		return "", &paramError{path: name}
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", &paramError{path: name}
	}
	return s, nil
}

func optionalString(args map[string]interface{}, name, def string) (string, *paramError) {
	v, ok := args[name]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &paramError{path: name}
	}
	return s, nil
}

func optionalBool(args map[string]interface{}, name string, def bool) (bool, *paramError) {
	v, ok := args[name]
	if !ok || v == nil {
		return def, nil
	}
	switch t := v.(type) {
	case bool:
		return t, nil
	case float64:
		return t != 0, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err == nil {
			return b, nil
		}
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "yes", "y", "on":
			return true, nil
		case "no", "n", "off", "":
			return false, nil
		}
		return false, &paramError{path: name}
	default:
		return false, &paramError{path: name}
	}
}

func position(args map[string]interface{}, name string) (types.Position, *paramError) {
	raw, perr := requiredString(args, name)
	if perr != nil {
		return "", perr
	}
	switch types.Position(strings.ToLower(strings.TrimSpace(raw))) {
	case types.PositionBefore:
		return types.PositionBefore, nil
	case types.PositionAfter:
		return types.PositionAfter, nil
	default:
		return "", &paramError{path: name}
	}
}

func (e *paramError) toOpError() *editor.OpError {
	return editor.NewOpError(editor.KindParameterSchema, fmt.Sprintf("invalid parameter: %s", e.path))
}
