// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package matcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/eramitmittal/file-tools-mcp/pkg/types"
)

func TestFind_WhitespaceInsensitiveExactMatch(t *testing.T) {
	text := []rune("  const  x  =  1;  ")
	search := []rune("const x=1")

	result := Find(text, search)
	exact, ok := result.(types.ExactResult)
	require.True(t, ok)
	require.Len(t, exact.Matches, 1)

	span := exact.Matches[0]
	require.True(t, span.IsExactMatch)
	require.Equal(t, "const  x  =  1", string(text[span.RawStart:span.RawEndExcl]))
}

func TestFind_EmptySearchReturnsNoSpans(t *testing.T) {
	text := []rune("anything at all")
	result := Find(text, []rune("   \t  "))
	exact, ok := result.(types.ExactResult)
	require.True(t, ok)
	require.Empty(t, exact.Matches)
}

func TestFind_OverlappingExactMatchesCapAtThree(t *testing.T) {
	text := []rune("aaaa")
	search := []rune("aa")
	result := Find(text, search)
	exact, ok := result.(types.ExactResult)
	require.True(t, ok)
	require.Len(t, exact.Matches, 3)
	require.Equal(t, 0, exact.Matches[0].RawStart)
	require.Equal(t, 1, exact.Matches[1].RawStart)
	require.Equal(t, 2, exact.Matches[2].RawStart)
}

func TestFind_FuzzyPrefixSuggestionContainsPartialMatch(t *testing.T) {
	text := []rune("function helloWorld() {\n  console.log('hi');\n}")
	search := []rune("console.log(hi)")

	result := Find(text, search)
	fuzzy, ok := result.(types.FuzzyResult)
	require.True(t, ok)
	require.NotEmpty(t, fuzzy.Candidates)

	found := false
	for _, span := range fuzzy.Candidates {
		if contains(string(text[span.RawStart:span.RawEndExcl]), "console.log('hi')") {
			found = true
		}
	}
	require.True(t, found)
}

func contains(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}

func TestMinMatchLen_ShortPattern(t *testing.T) {
	require.Equal(t, 2, minMatchLen(2))
	require.Equal(t, 3, minMatchLen(8))
}

func TestMinMatchLen_LongPattern(t *testing.T) {
	got := minMatchLen(100)
	require.Greater(t, got, 40)
}
