// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package matcher

import (
	"unicode"

	"github.com/eramitmittal/file-tools-mcp/internal/scalarvec"
)

func isWs(r rune) bool { return unicode.IsSpace(r) }

// reconstructRawSpan converts a flat half-open range to its raw half-open
// range via the view's F→R map (§4.4).
func reconstructRawSpan(v *scalarvec.View, flatStart, flatEndExcl int) (int, int) {
	if flatEndExcl <= flatStart {
		rs := v.FlatToRawIndex(flatStart)
		return rs, rs
	}
	rawStart := v.FlatToRawIndex(flatStart)
	rawEndExcl := v.FlatToRawIndex(flatEndExcl-1) + 1
	return rawStart, rawEndExcl
}

// expandLeft moves i left over whitespace, then left over the token
// immediately preceding it, per §4.4.
func expandLeft(raw []rune, i int) int {
	for i > 0 && isWs(raw[i-1]) {
		i--
	}
	for i > 0 && !isWs(raw[i-1]) {
		i--
	}
	return i
}

// expandRight is the mirror of expandLeft.
func expandRight(raw []rune, i int) int {
	n := len(raw)
	for i < n && isWs(raw[i]) {
		i++
	}
	for i < n && !isWs(raw[i]) {
		i++
	}
	return i
}

// countNonWs counts non-whitespace scalars in raw[start:end).
func countNonWs(raw []rune, start, end int) int {
	count := 0
	for i := start; i < end && i < len(raw); i++ {
		if i >= 0 && !isWs(raw[i]) {
			count++
		}
	}
	return count
}

// widenPrefix grows [start, end) rightward one token at a time until it
// contains at least m non-whitespace scalars or cannot widen further
// (§4.5 step 6, prefix case).
func widenPrefix(raw []rune, start, end, m int) (int, int) {
	for countNonWs(raw, start, end) < m && end < len(raw) {
		next := expandRight(raw, end+1)
		if next == end {
			break
		}
		end = next
	}
	return start, end
}

// widenSuffix is the mirror of widenPrefix, growing leftward.
func widenSuffix(raw []rune, start, end, m int) (int, int) {
	for countNonWs(raw, start, end) < m && start > 0 {
		next := expandLeft(raw, start-1)
		if next == start {
			break
		}
		start = next
	}
	return start, end
}

// widenMid widens by one token at a time, each step on the side that adds
// more non-whitespace scalars (left on ties), halting when neither side
// increases the non-whitespace count (§4.5 step 6, mid case).
func widenMid(raw []rune, start, end int) (int, int) {
	start = expandLeft(raw, start)
	end = expandRight(raw, end)
	for {
		count := countNonWs(raw, start, end)

		leftCandidate := start
		if start > 0 {
			leftCandidate = expandLeft(raw, start-1)
		}
		rightCandidate := end
		if end < len(raw) {
			rightCandidate = expandRight(raw, end+1)
		}

		leftGain := countNonWs(raw, leftCandidate, end) - count
		rightGain := countNonWs(raw, start, rightCandidate) - count

		if leftGain <= 0 && rightGain <= 0 {
			return start, end
		}
		if leftGain >= rightGain {
			start = leftCandidate
		} else {
			end = rightCandidate
		}
	}
}
