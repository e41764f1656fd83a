// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package editor

import (
	"fmt"

	"github.com/eramitmittal/file-tools-mcp/internal/matcher"
	"github.com/eramitmittal/file-tools-mcp/pkg/types"
)

// resolveBlockWindow narrows the raw range insert_text searches within,
// per §4.7's optional blockStartMarker/blockEndMarker: the first occurrence
// of the start marker and the last occurrence of the end marker found
// after it.
func resolveBlockWindow(raw []rune, blockStartMarker, blockEndMarker string) (int, int, *OpError) {
	lo, hi := 0, len(raw)

	if blockStartMarker != "" {
		matches, opErr := findAllExact(raw, 0, len(raw), blockStartMarker, "anchorBlockStartMarker")
		if opErr != nil {
			return 0, 0, opErr
		}
		lo = matches[0].RawEndExcl
	}

	if blockEndMarker != "" {
		// The matcher caps exact matches at three, so scanning resumes just
		// past the last match found until a pass finds fewer than three.
		for from := lo; ; from = hi + 1 {
			matches, opErr := findAllExact(raw, from, len(raw), blockEndMarker, "anchorBlockEndMarker")
			if opErr != nil && from == lo {
				return 0, 0, opErr
			}
			if opErr != nil {
				break
			}
			hi = matches[len(matches)-1].RawStart
			if len(matches) < 3 {
				break
			}
		}
	}

	return lo, hi, nil
}

// resolveSingleExact requires exactly one exact match of searchText within
// raw[lo:hi), returning its span with offsets shifted back to raw
// coordinates. A fuzzy-only result yields KindNoMatch with suggestions; more
// than one exact match yields KindMultipleMatches with C6 suggestions.
func resolveSingleExact(raw []rune, lo, hi int, searchText, paramName string) (types.Span, *OpError) {
	window := raw[lo:hi]
	result := matcher.Find(window, []rune(searchText))

	switch r := result.(type) {
	case types.FuzzyResult:
		opErr := newError(KindNoMatch, fmt.Sprintf("no match for %s", paramName))
		for _, span := range r.Candidates {
			opErr.Suggestions = append(opErr.Suggestions, types.Suggestion{
				paramName: string(window[span.RawStart:span.RawEndExcl]),
			})
		}
		return types.Span{}, opErr
	case types.ExactResult:
		if len(r.Matches) == 0 {
			return types.Span{}, newError(KindNoMatch, fmt.Sprintf("no match for %s", paramName))
		}
		if len(r.Matches) > 1 {
			suggestions := matcher.Disambiguate(window, r.Matches)
			opErr := newError(KindMultipleMatches, fmt.Sprintf("multiple matches for %s", paramName))
			for _, s := range suggestions {
				opErr.Suggestions = append(opErr.Suggestions, types.Suggestion{paramName: s})
			}
			return types.Span{}, opErr
		}
		return shiftSpan(r.Matches[0], lo), nil
	default:
		return types.Span{}, newError(KindUnexpected, "unrecognized match result")
	}
}

// findAllExact requires at least one exact match and returns all of them
// (capped at three by the matcher), shifted back to raw coordinates.
func findAllExact(raw []rune, lo, hi int, searchText, paramName string) ([]types.Span, *OpError) {
	window := raw[lo:hi]
	result := matcher.Find(window, []rune(searchText))

	switch r := result.(type) {
	case types.FuzzyResult:
		opErr := newError(KindNoMatch, fmt.Sprintf("no match for %s", paramName))
		for _, span := range r.Candidates {
			opErr.Suggestions = append(opErr.Suggestions, types.Suggestion{
				paramName: string(window[span.RawStart:span.RawEndExcl]),
			})
		}
		return nil, opErr
	case types.ExactResult:
		if len(r.Matches) == 0 {
			return nil, newError(KindNoMatch, fmt.Sprintf("no match for %s", paramName))
		}
		out := make([]types.Span, len(r.Matches))
		for i, s := range r.Matches {
			out[i] = shiftSpan(s, lo)
		}
		return out, nil
	default:
		return nil, newError(KindUnexpected, "unrecognized match result")
	}
}

func shiftSpan(s types.Span, lo int) types.Span {
	s.RawStart += lo
	s.RawEndExcl += lo
	return s
}
