// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package matcher

import (
	"unicode"

	"github.com/eramitmittal/file-tools-mcp/pkg/types"
)

// projectedKey strips whitespace from a raw slice so spans are grouped by
// their projected flat content rather than their raw bytes (§4.6).
func projectedKey(raw []rune, start, end int) string {
	out := make([]rune, 0, end-start)
	for _, r := range raw[start:end] {
		if !unicode.IsSpace(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// Disambiguate implements §4.6: given ≥2 exact-match spans that share a
// projected flat slice, iteratively expand each by one token on each side
// until no two expandable spans share projected content. Returns one raw
// string per input span, in the same order.
func Disambiguate(raw []rune, spans []types.Span) []string {
	type cand struct {
		rawStart, rawEndExcl int
		expandable           bool
	}
	cands := make([]cand, len(spans))
	for i, s := range spans {
		cands[i] = cand{rawStart: s.RawStart, rawEndExcl: s.RawEndExcl, expandable: true}
	}

	for {
		groups := map[string][]int{}
		for i, c := range cands {
			key := projectedKey(raw, c.rawStart, c.rawEndExcl)
			groups[key] = append(groups[key], i)
		}

		conflict := false
		for _, idxs := range groups {
			if len(idxs) < 2 {
				continue
			}
			anyExpandable := false
			for _, i := range idxs {
				if cands[i].expandable {
					anyExpandable = true
				}
			}
			if !anyExpandable {
				continue
			}
			conflict = true
			for _, i := range idxs {
				c := &cands[i]
				if !c.expandable {
					continue
				}
				newStart := c.rawStart
				if c.rawStart > 0 {
					newStart = expandLeft(raw, c.rawStart-1)
				}
				newEnd := c.rawEndExcl
				if c.rawEndExcl < len(raw) {
					newEnd = expandRight(raw, c.rawEndExcl+1)
				}
				if newStart == c.rawStart && newEnd == c.rawEndExcl {
					c.expandable = false
					continue
				}
				c.rawStart, c.rawEndExcl = newStart, newEnd
			}
		}
		if !conflict {
			break
		}

		allStuck := true
		for _, c := range cands {
			if c.expandable {
				allStuck = false
				break
			}
		}
		if allStuck {
			break
		}
	}

	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = string(raw[c.rawStart:c.rawEndExcl])
	}
	return out
}
