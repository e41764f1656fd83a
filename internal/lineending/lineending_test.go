// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package lineending

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetect_PrefersCRLF(t *testing.T) {
	require.Equal(t, "\r\n", Detect("a\r\nb\nc"))
}

func TestDetect_FallsBackToLF(t *testing.T) {
	require.Equal(t, "\n", Detect("a\nb"))
}

func TestDetect_FallsBackToCR(t *testing.T) {
	require.Equal(t, "\r", Detect("a\rb"))
}

func TestDetect_DefaultsToLFWhenAbsent(t *testing.T) {
	require.Equal(t, "\n", Detect("no newlines here"))
}
