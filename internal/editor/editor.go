// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package editor

import (
	"fmt"
	"sort"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/eramitmittal/file-tools-mcp/internal/matcher"
	"github.com/eramitmittal/file-tools-mcp/pkg/types"
)

// Editor applies edit operators to files on disk. When DryRun is set, a
// successful operation computes its result without writing: for the
// text-editing operators the returned message carries an inline diff
// (diffmatchpatch's pretty-text rendering, not a unified diff); create,
// rename and delete-file only note that nothing was written.
type Editor struct {
	DryRun bool
}

// commit either writes raw to path or, in dry-run mode, renders a diff of
// the change instead of writing it.
func (e *Editor) commit(path string, before, after []rune) (string, *OpError) {
	if e.DryRun {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(string(before), string(after), false)
		return dmp.DiffPrettyText(diffs), nil
	}
	if err := atomicWrite(path, after); err != nil {
		return "", err
	}
	return "", nil
}

// ReplaceMatchingText implements the replace operator (§4.7).
func (e *Editor) ReplaceMatchingText(filePath, searchText, replacementText string, all bool) (*types.ToolResult, *OpError) {
	if searchText == replacementText {
		return nil, newError(KindIdenticalText, "searchText and replacementText are identical")
	}

	raw, opErr := readRaw(filePath)
	if opErr != nil {
		return nil, opErr
	}

	_, selected, opErr := resolveSpans(raw, searchText, all, "searchText")
	if opErr != nil {
		return nil, opErr
	}

	after := spliceAllDescending(raw, selected, []rune(replacementText))
	diff, opErr := e.commit(filePath, raw, after)
	if opErr != nil {
		return nil, opErr
	}
	return &types.ToolResult{Message: resultMessage(e.DryRun, diff, "replaced text in %s", filePath)}, nil
}

// DeleteMatchingText implements the delete operator (§4.7).
func (e *Editor) DeleteMatchingText(filePath, searchText string, all bool) (*types.ToolResult, *OpError) {
	raw, opErr := readRaw(filePath)
	if opErr != nil {
		return nil, opErr
	}

	_, selected, opErr := resolveSpans(raw, searchText, all, "searchText")
	if opErr != nil {
		return nil, opErr
	}

	after := spliceAllDescending(raw, selected, nil)
	diff, opErr := e.commit(filePath, raw, after)
	if opErr != nil {
		return nil, opErr
	}
	return &types.ToolResult{Message: resultMessage(e.DryRun, diff, "deleted text in %s", filePath)}, nil
}

// resolveSpans runs the matcher for searchText and resolves it down to the
// set of spans an operator should act on: exactly one unless all is true,
// in which case every exact match the matcher returns is selected (the
// matcher stops after the first three; later occurrences are not
// selected). On no-match it returns
// KindNoMatch with up to three fuzzy suggestions; on an ambiguous single
// match it returns KindMultipleMatches with C6 disambiguation suggestions.
func resolveSpans(raw []rune, searchText string, all bool, paramName string) (types.MatchResult, []types.Span, *OpError) {
	result := matcher.Find(raw, []rune(searchText))

	switch r := result.(type) {
	case types.FuzzyResult:
		opErr := newError(KindNoMatch, fmt.Sprintf("no match for %s", paramName))
		for _, span := range r.Candidates {
			opErr.Suggestions = append(opErr.Suggestions, types.Suggestion{
				paramName: string(stringFromSpan(raw, span)),
			})
		}
		return nil, nil, opErr
	case types.ExactResult:
		if len(r.Matches) == 0 {
			return nil, nil, newError(KindNoMatch, fmt.Sprintf("no match for %s", paramName))
		}
		if all {
			return r, r.Matches, nil
		}
		if len(r.Matches) > 1 {
			suggestions := matcher.Disambiguate(raw, r.Matches)
			opErr := newError(KindMultipleMatches, fmt.Sprintf("multiple matches for %s", paramName))
			for _, s := range suggestions {
				opErr.Suggestions = append(opErr.Suggestions, types.Suggestion{paramName: s})
			}
			return nil, nil, opErr
		}
		return r, r.Matches[:1], nil
	default:
		return nil, nil, newError(KindUnexpected, "unrecognized match result")
	}
}

func stringFromSpan(raw []rune, span types.Span) []rune {
	return raw[span.RawStart:span.RawEndExcl]
}

// spliceAllDescending applies spans in descending rawStart order (§4.7,
// §5 "Ordering guarantees") so earlier splices never invalidate later raw
// indices.
func spliceAllDescending(raw []rune, spans []types.Span, replacement []rune) []rune {
	ordered := make([]types.Span, len(spans))
	copy(ordered, spans)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].RawStart > ordered[j].RawStart })

	out := raw
	for _, s := range ordered {
		out = splice(out, s.RawStart, s.RawEndExcl, replacement)
	}
	return out
}

func resultMessage(dryRun bool, diff, format string, args ...interface{}) string {
	base := fmt.Sprintf(format, args...)
	if dryRun {
		return base + " (dry run)\n" + diff
	}
	return base
}
