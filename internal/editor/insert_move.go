// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package editor

import (
	"github.com/eramitmittal/file-tools-mcp/internal/lineending"
	"github.com/eramitmittal/file-tools-mcp/pkg/types"
)

// InsertText implements the insert operator (§4.7).
func (e *Editor) InsertText(filePath, textToBeInserted, anchorText string, position types.Position, blockStartMarker, blockEndMarker string, addNewLine bool) (*types.ToolResult, *OpError) {
	raw, opErr := readRaw(filePath)
	if opErr != nil {
		return nil, opErr
	}

	lo, hi, opErr := resolveBlockWindow(raw, blockStartMarker, blockEndMarker)
	if opErr != nil {
		return nil, opErr
	}

	anchor, opErr := resolveSingleExact(raw, lo, hi, anchorText, "anchorText")
	if opErr != nil {
		return nil, opErr
	}

	insertAt := anchor.RawStart
	inserted := []rune(textToBeInserted)
	if position == types.PositionAfter {
		insertAt = anchor.RawEndExcl
	}

	if addNewLine {
		le := []rune(lineending.Detect(string(raw)))
		if position == types.PositionAfter {
			inserted = append(append([]rune{}, le...), inserted...)
		} else {
			inserted = append(append([]rune{}, inserted...), le...)
		}
	}

	after := splice(raw, insertAt, insertAt, inserted)
	diff, opErr := e.commit(filePath, raw, after)
	if opErr != nil {
		return nil, opErr
	}
	return &types.ToolResult{Message: resultMessage(e.DryRun, diff, "inserted text in %s", filePath)}, nil
}

// MoveText implements the move operator, including line-boundary-aware
// detection (§4.7). textToBeMoved is always resolved against the whole
// file; anchorText is resolved within the optional block window, the same
// as InsertText.
func (e *Editor) MoveText(filePath, textToBeMoved, anchorText string, position types.Position, blockStartMarker, blockEndMarker string) (*types.ToolResult, *OpError) {
	raw, opErr := readRaw(filePath)
	if opErr != nil {
		return nil, opErr
	}

	moveSpan, opErr := resolveSingleExact(raw, 0, len(raw), textToBeMoved, "textToBeMoved")
	if opErr != nil {
		return nil, opErr
	}

	lo, hi, opErr := resolveBlockWindow(raw, blockStartMarker, blockEndMarker)
	if opErr != nil {
		return nil, opErr
	}
	anchorSpan, opErr := resolveSingleExact(raw, lo, hi, anchorText, "anchorText")
	if opErr != nil {
		return nil, opErr
	}

	moveLeft := findLineBoundaryLeft(raw, moveSpan.RawStart)
	moveRight := findLineBoundaryRight(raw, moveSpan.RawEndExcl)
	moveAtLineBoundary := moveLeft >= 0 && moveRight >= 0

	var anchorAtLineBoundary bool
	if position == types.PositionBefore {
		anchorAtLineBoundary = findLineBoundaryLeft(raw, anchorSpan.RawStart) >= 0
	} else {
		anchorAtLineBoundary = findLineBoundaryRight(raw, anchorSpan.RawEndExcl) >= 0
	}

	isLineBoundaryMove := moveAtLineBoundary && anchorAtLineBoundary

	var delStart, delEnd, insertAt int
	var movedText []rune
	le := []rune(lineending.Detect(string(raw)))

	if isLineBoundaryMove {
		delStart = moveLeft
		delEnd = consumeNewlineRun(raw, moveRight)
		movedText = append([]rune{}, raw[moveLeft:moveRight]...)

		if position == types.PositionBefore {
			insertAt = findLineBoundaryLeft(raw, anchorSpan.RawStart)
			movedText = append(movedText, le...)
		} else {
			insertAt = findLineBoundaryRight(raw, anchorSpan.RawEndExcl)
			movedText = append(append([]rune{}, le...), movedText...)
		}
	} else {
		delStart = moveSpan.RawStart
		delEnd = moveSpan.RawEndExcl
		movedText = append([]rune{}, raw[moveSpan.RawStart:moveSpan.RawEndExcl]...)

		if position == types.PositionBefore {
			insertAt = anchorSpan.RawStart
		} else {
			insertAt = anchorSpan.RawEndExcl
		}
	}

	if insertAt > delStart && insertAt < delEnd {
		return nil, newError(KindOverlap, "insertion point lies inside the text being moved")
	}

	shiftedInsertAt := insertAt
	if insertAt > delStart {
		shiftedInsertAt -= delEnd - delStart
	}

	after := splice(raw, delStart, delEnd, nil)
	after = splice(after, shiftedInsertAt, shiftedInsertAt, movedText)

	diff, opErr := e.commit(filePath, raw, after)
	if opErr != nil {
		return nil, opErr
	}
	return &types.ToolResult{Message: resultMessage(e.DryRun, diff, "moved text in %s", filePath)}, nil
}
