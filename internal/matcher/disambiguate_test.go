// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package matcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/eramitmittal/file-tools-mcp/pkg/types"
)

func TestDisambiguate_ExpandsUntilUnique(t *testing.T) {
	text := "Only bar\nbar and foo\nonly foo no bar but could have been only bar"
	raw := []rune(text)

	var spans []types.Span
	needle := []rune("foo")
	for i := 0; i+len(needle) <= len(raw); i++ {
		match := true
		for k, c := range needle {
			if raw[i+k] != c {
				match = false
				break
			}
		}
		if match {
			spans = append(spans, types.Span{RawStart: i, RawEndExcl: i + len(needle)})
		}
	}
	require.Len(t, spans, 2)

	out := Disambiguate(raw, spans)
	require.Len(t, out, 2)
	require.NotEqual(t, out[0], out[1])
}
