// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package lineending detects the line-ending literal used by a file's
// existing content (by fixed priority, not by count), so edits that inject
// new lines match it.
package lineending

import "strings"

// Detect probes text for its line-ending literal, preferring CRLF, then LF,
// then CR, and falling back to "\n" when none is present.
func Detect(text string) string {
	switch {
	case strings.Contains(text, "\r\n"):
		return "\r\n"
	case strings.Contains(text, "\n"):
		return "\n"
	case strings.Contains(text, "\r"):
		return "\r"
	default:
		return "\n"
	}
}
