// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package matcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandLeft_StopsAtTokenStart(t *testing.T) {
	raw := []rune("foo bar baz")
	// index of 'a' in "bar" is 5; expanding left should land on 'b' of "bar".
	got := expandLeft(raw, 5)
	require.Equal(t, 4, got)
}

func TestExpandRight_StopsAtTokenEnd(t *testing.T) {
	raw := []rune("foo bar baz")
	got := expandRight(raw, 5) // starting inside "bar"
	require.Equal(t, 7, got)   // end of "bar"
}

func TestCountNonWs(t *testing.T) {
	raw := []rune("a b  c")
	require.Equal(t, 3, countNonWs(raw, 0, len(raw)))
}

func TestWidenMid_GrowsUntilPlateau(t *testing.T) {
	raw := []rune("aaa bbb ccc ddd")
	start, end := widenMid(raw, 5, 6) // inside "bbb"
	got := string(raw[start:end])
	require.Contains(t, got, "bbb")
}
