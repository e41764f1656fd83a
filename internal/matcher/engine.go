// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package matcher

import (
	"math"
	"sort"

	"github.com/eramitmittal/file-tools-mcp/internal/scalarvec"
	"github.com/eramitmittal/file-tools-mcp/pkg/types"
)

// maxCandidates is the cap applied to both exact matches and fuzzy
// candidates (§4.5).
const maxCandidates = 3

// minMatchLen implements the §4.5 formula for the minimum length a fuzzy
// candidate must reach.
func minMatchLen(m int) int {
	if m <= 8 {
		if m < 3 {
			return m
		}
		return 3
	}
	percent := 0.4 + 0.4*math.Min(float64(m)/1500.0, 1.0)
	return int(math.Ceil(float64(m) * percent))
}

// Find runs the full match cascade (§4.5): exact phase first, fuzzy phase
// only when the exact phase found nothing. text is the file's raw scalar
// vector; search is the caller's search string before whitespace removal.
func Find(text []rune, search []rune) types.MatchResult {
	v := scalarvec.Build(text)
	p := scalarvec.Build(search).Flat

	if len(p) == 0 {
		return types.ExactResult{Matches: nil}
	}

	t := v.Flat
	exact := exactPhase(v, t, p)
	if len(exact) > 0 {
		return types.ExactResult{Matches: exact}
	}
	return types.FuzzyResult{Candidates: fuzzyPhase(v, t, p)}
}

// exactPhase finds occurrences of p in t, advancing the scan by +1 (not
// +len(p)) so overlapping seeds surface for disambiguation (§4.5, §9).
func exactPhase(v *scalarvec.View, t, p []rune) []types.Span {
	var spans []types.Span
	m := len(p)
	n := len(t)
	for start := 0; start+m <= n && len(spans) < maxCandidates; start++ {
		if runesEqual(t[start:start+m], p) {
			rawStart, rawEndExcl := reconstructRawSpan(v, start, start+m)
			spans = append(spans, types.Span{
				FlatStart:    start,
				FlatEndExcl:  start + m,
				RawStart:     rawStart,
				RawEndExcl:   rawEndExcl,
				IsExactMatch: true,
			})
		}
	}
	return spans
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// fuzzyPhase implements §4.5 steps 1-6.
func fuzzyPhase(v *scalarvec.View, t, p []rune) []types.Span {
	m := len(p)
	n := len(t)
	minLen := minMatchLen(m)

	prefixArr := prefixMatches(p, t)
	suffixArr := suffixMatches(p, t)

	var prefixCandidates, suffixCandidates []types.RawMatch
	for pos := 0; pos < n; pos++ {
		if l := prefixArr[pos]; l > 0 {
			prefixCandidates = append(prefixCandidates, types.RawMatch{
				Kind: types.KindPrefix, FlatStart: pos, FlatEndExcl: pos + l, MatchedLen: l,
			})
		}
	}
	for pos := 0; pos < n; pos++ {
		if l := suffixArr[pos]; l > 0 {
			suffixCandidates = append(suffixCandidates, types.RawMatch{
				Kind: types.KindSuffix, FlatStart: pos, FlatEndExcl: pos + l, MatchedLen: l,
			})
		}
	}

	sa := newSuffixAutomaton(p)
	midHits := sa.scanMid(t, m, minLen)
	var midCandidates []types.RawMatch
	for _, h := range midHits {
		midCandidates = append(midCandidates, types.RawMatch{
			Kind: types.KindMid, FlatStart: h.flatStart, FlatEndExcl: h.flatEndExcl, MatchedLen: h.matchedLen,
		})
	}

	combined := combinedCandidates(prefixCandidates, suffixCandidates, minLen, m)

	var pool []types.RawMatch
	for _, c := range prefixCandidates {
		if c.MatchedLen >= minLen {
			pool = append(pool, c)
		}
	}
	for _, c := range suffixCandidates {
		if c.MatchedLen >= minLen {
			pool = append(pool, c)
		}
	}
	pool = append(pool, midCandidates...)
	pool = append(pool, combined...)

	if len(pool) == 0 {
		return nil
	}

	maxLen := 0
	for _, c := range pool {
		if c.MatchedLen > maxLen {
			maxLen = c.MatchedLen
		}
	}

	seen := map[[2]int]bool{}
	var top []types.RawMatch
	for _, c := range pool {
		if c.MatchedLen != maxLen {
			continue
		}
		key := [2]int{c.FlatStart, c.FlatEndExcl}
		if seen[key] {
			continue
		}
		seen[key] = true
		top = append(top, c)
	}
	sort.Slice(top, func(i, j int) bool { return top[i].FlatStart < top[j].FlatStart })
	if len(top) > maxCandidates {
		top = top[:maxCandidates]
	}

	spans := make([]types.Span, 0, len(top))
	for _, c := range top {
		spans = append(spans, materialize(v, c, m))
	}
	return spans
}

// combinedCandidates implements §4.5 step 4.
func combinedCandidates(prefixes, suffixes []types.RawMatch, minLen, m int) []types.RawMatch {
	halfThreshold := minLen / 2
	if halfThreshold < 1 {
		halfThreshold = 1
	}

	var keptPrefixes, keptSuffixes []types.RawMatch
	for _, c := range prefixes {
		if c.MatchedLen >= halfThreshold {
			keptPrefixes = append(keptPrefixes, c)
		}
	}
	for _, c := range suffixes {
		if c.MatchedLen >= halfThreshold {
			keptSuffixes = append(keptSuffixes, c)
		}
	}
	sort.Slice(keptSuffixes, func(i, j int) bool { return keptSuffixes[i].FlatStart < keptSuffixes[j].FlatStart })

	minSpan := int(0.75 * float64(m))
	maxSpan := int(math.Ceil(1.25 * float64(m)))

	var out []types.RawMatch
	for _, pre := range keptPrefixes {
		for _, suf := range keptSuffixes {
			if suf.FlatStart < pre.FlatEndExcl {
				continue
			}
			span := suf.FlatEndExcl - pre.FlatStart
			if span > maxSpan {
				break
			}
			if span < minSpan {
				continue
			}
			if pre.MatchedLen+suf.MatchedLen < minLen {
				continue
			}
			out = append(out, types.RawMatch{
				Kind:        types.KindCombined,
				FlatStart:   pre.FlatStart,
				FlatEndExcl: suf.FlatEndExcl,
				MatchedLen:  pre.MatchedLen + suf.MatchedLen,
			})
		}
	}
	return out
}

// materialize reconstructs a raw span for a fuzzy candidate and applies the
// kind-specific token-boundary widening described in §4.5 step 6.
func materialize(v *scalarvec.View, c types.RawMatch, m int) types.Span {
	raw := v.Raw
	var rawStart, rawEndExcl int

	switch c.Kind {
	case types.KindPrefix:
		rawStart = v.FlatToRawIndex(c.FlatStart)
		end := expandRight(raw, rawStart)
		rawStart, rawEndExcl = widenPrefix(raw, rawStart, end, m)
	case types.KindSuffix:
		rawEndExcl = v.FlatToRawIndex(c.FlatEndExcl)
		start := expandLeft(raw, rawEndExcl)
		rawStart, rawEndExcl = widenSuffix(raw, start, rawEndExcl, m)
	case types.KindMid:
		rawStart, rawEndExcl = reconstructRawSpan(v, c.FlatStart, c.FlatEndExcl)
		rawStart, rawEndExcl = widenMid(raw, rawStart, rawEndExcl)
	case types.KindCombined:
		rawStart, rawEndExcl = reconstructRawSpan(v, c.FlatStart, c.FlatEndExcl)
	}

	return types.Span{
		FlatStart:    c.FlatStart,
		FlatEndExcl:  c.FlatEndExcl,
		RawStart:     rawStart,
		RawEndExcl:   rawEndExcl,
		IsExactMatch: false,
	}
}
