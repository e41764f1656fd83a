// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package editor

import "github.com/eramitmittal/file-tools-mcp/pkg/types"

// Kind is the closed set of error kinds an operator can fail with (§7).
type Kind int

const (
	KindParameterSchema Kind = iota
	KindPathNotFound
	KindBinaryContent
	KindIdenticalText
	KindNoMatch
	KindMultipleMatches
	KindOverlap
	KindDirectoryMissing
	KindTargetExists
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindParameterSchema:
		return "parameter_schema"
	case KindPathNotFound:
		return "path_not_found"
	case KindBinaryContent:
		return "binary_content"
	case KindIdenticalText:
		return "identical_text"
	case KindNoMatch:
		return "no_match"
	case KindMultipleMatches:
		return "multiple_matches"
	case KindOverlap:
		return "overlap"
	case KindDirectoryMissing:
		return "directory_missing"
	case KindTargetExists:
		return "target_exists"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// OpError is the structured failure every operator returns instead of
// letting a raw error escape (§7 "Propagation").
type OpError struct {
	Kind        Kind
	Message     string
	Suggestions []types.Suggestion
}

func (e *OpError) Error() string { return e.Message }

func newError(kind Kind, message string) *OpError {
	return &OpError{Kind: kind, Message: message}
}

// NewOpError constructs an OpError for callers outside the package, such
// as the request dispatcher's parameter validation.
func NewOpError(kind Kind, message string) *OpError {
	return newError(kind, message)
}
