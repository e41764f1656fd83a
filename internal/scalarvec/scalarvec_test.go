// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scalarvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild_BasicWhitespaceStripping(t *testing.T) {
	v := BuildFromText("  const  x  =  1;  ")
	require.Equal(t, "constx=1;", string(v.Flat))
}

func TestBuild_FlatToRawRoundTrip(t *testing.T) {
	v := BuildFromText("ab  cd")
	for j, r := range v.Flat {
		rawIdx := v.FlatToRaw[j]
		require.Equal(t, r, v.Raw[rawIdx])
		require.Equal(t, j, v.RawToFlat[rawIdx])
	}
}

func TestBuild_RawToFlatNonDecreasing(t *testing.T) {
	v := BuildFromText("a \t\n b   c")
	for i := 1; i < len(v.RawToFlat); i++ {
		require.GreaterOrEqual(t, v.RawToFlat[i], v.RawToFlat[i-1])
	}
}

func TestBuild_FlatToRawStrictlyIncreasing(t *testing.T) {
	v := BuildFromText("a \t\n b   c")
	for j := 1; j < len(v.FlatToRaw); j++ {
		require.Greater(t, v.FlatToRaw[j], v.FlatToRaw[j-1])
	}
}

func TestBuild_TrailingWhitespaceProjectsToFlatLength(t *testing.T) {
	v := BuildFromText("abc   ")
	lastIdx := len(v.Raw) - 1
	require.Equal(t, len(v.Flat), v.RawToFlat[lastIdx])
}

func TestBuild_EmptyInput(t *testing.T) {
	v := BuildFromText("")
	require.Empty(t, v.Flat)
	require.Empty(t, v.RawToFlat)
	require.Empty(t, v.FlatToRaw)
}

func TestBuild_AllWhitespace(t *testing.T) {
	v := BuildFromText("   \n\t  ")
	require.Empty(t, v.Flat)
	for _, idx := range v.RawToFlat {
		require.Equal(t, 0, idx)
	}
}

func TestRawEndToFlatEnd(t *testing.T) {
	v := BuildFromText("ab cd")
	// "ab cd" -> raw: a b _ c d (indices 0..4), flat: a b c d
	require.Equal(t, 0, v.RawEndToFlatEnd(0))
	require.Equal(t, 2, v.RawEndToFlatEnd(2))  // "ab"
	require.Equal(t, len(v.Flat), v.RawEndToFlatEnd(len(v.Raw)))
}

func TestDecode_MultibyteScalars(t *testing.T) {
	// "café" has an accented e (2-byte UTF-8) as a single scalar.
	r := Decode("café")
	require.Len(t, r, 4)
	require.Equal(t, 'é', r[3])
}

func TestBuild_UnicodeWhitespaceClass(t *testing.T) {
	// U+00A0 NO-BREAK SPACE and U+2003 EM SPACE are both Unicode whitespace.
	v := BuildFromText("a b c")
	require.Equal(t, "abc", string(v.Flat))
}
