// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scalarvec builds the Unicode scalar vector a file's text is
// indexed by, and the whitespace-stripped flat projection of it that the
// matcher searches against.
package scalarvec

import (
	"unicode"
	"unicode/utf8"
)

// Decode converts UTF-8 bytes into an ordered sequence of Unicode scalar
// values (codepoints), not bytes and not UTF-16 code units. Invalid byte
// sequences decode to utf8.RuneError, one scalar per byte, same as
// utf8.DecodeRuneInString already does for us.
func Decode(text string) []rune {
	out := make([]rune, 0, len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		out = append(out, r)
		i += size
	}
	return out
}

// Encode is the inverse of Decode.
func Encode(r []rune) string {
	return string(r)
}

// View is the whitespace-stripped projection F of a raw scalar vector R,
// along with the two monotone index maps between them (§3).
type View struct {
	Raw  []rune
	Flat []rune

	// RawToFlat[i] is the flat index raw index i projects to. Non-decreasing.
	RawToFlat []int
	// FlatToRaw[j] is the raw index of flat scalar j. Strictly increasing.
	FlatToRaw []int
}

// Build constructs a View from a raw scalar vector in a single left-to-right
// O(|R|) pass (§4.1).
func Build(raw []rune) *View {
	rawToFlat := make([]int, len(raw))
	flat := make([]rune, 0, len(raw))
	flatToRaw := make([]int, 0, len(raw))

	j := 0
	for i, c := range raw {
		if isWhitespace(c) {
			rawToFlat[i] = j
			continue
		}
		rawToFlat[i] = j
		flatToRaw = append(flatToRaw, i)
		flat = append(flat, c)
		j++
	}

	return &View{
		Raw:       raw,
		Flat:      flat,
		RawToFlat: rawToFlat,
		FlatToRaw: flatToRaw,
	}
}

// BuildFromText is a convenience wrapper that decodes text before building
// the view.
func BuildFromText(text string) *View {
	return Build(Decode(text))
}

// isWhitespace classifies a scalar using Unicode's White_Space property.
// unicode.IsSpace already implements exactly this property for runes, so it
// is used directly rather than reimplemented.
func isWhitespace(c rune) bool {
	return unicode.IsSpace(c)
}

// RawEndToFlatEnd maps an exclusive raw end offset to its exclusive flat end
// offset (§3 invariants): e maps to RawToFlat[e-1]+1 when e is in (0, |R|],
// and the full-length endpoints map to each other.
func (v *View) RawEndToFlatEnd(e int) int {
	if e <= 0 {
		return 0
	}
	if e >= len(v.Raw) {
		return len(v.Flat)
	}
	return v.RawToFlat[e-1] + 1
}

// FlatToRawIndex returns the raw index of flat index j, or len(Raw) if j is
// the flat vector's exclusive end.
func (v *View) FlatToRawIndex(j int) int {
	if j >= len(v.FlatToRaw) {
		return len(v.Raw)
	}
	return v.FlatToRaw[j]
}
