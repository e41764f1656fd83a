// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package matcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefixMatches_ExactAtStart(t *testing.T) {
	p := []rune("abc")
	text := []rune("abcxyz")
	got := prefixMatches(p, text)
	require.Equal(t, 3, got[0])
	require.Equal(t, 0, got[1])
}

func TestPrefixMatches_PartialPrefixInMiddle(t *testing.T) {
	p := []rune("abcdef")
	text := []rune("xxabcyy")
	got := prefixMatches(p, text)
	require.Equal(t, 3, got[2]) // "abc" matches P[0:3]
}

func TestSuffixMatches_ExactAtEnd(t *testing.T) {
	p := []rune("abc")
	text := []rune("xyzabc")
	got := suffixMatches(p, text)
	require.Equal(t, 3, got[3])
}

func TestSuffixMatches_PartialSuffix(t *testing.T) {
	p := []rune("xyzdef")
	text := []rune("aadef")
	got := suffixMatches(p, text)
	require.Equal(t, 3, got[2]) // "def" matches P[3:6]
}

func TestZArray_EmptyPattern(t *testing.T) {
	got := prefixMatches(nil, []rune("abc"))
	require.Equal(t, []int{0, 0, 0}, got)
}
