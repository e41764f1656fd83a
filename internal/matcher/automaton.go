// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package matcher

// saState is one state of the suffix automaton built over pattern P (§4.3).
// minEnd/maxEnd are the minimum and maximum end position in P, over all
// occurrences in P of strings this state represents.
type saState struct {
	length int
	link   int
	next   map[rune]int
	minEnd int
	maxEnd int
}

// suffixAutomaton is a standard online suffix automaton with the §4.3
// (minEnd, maxEnd) augmentation propagated along suffix links after
// construction.
type suffixAutomaton struct {
	states []saState
	last   int
}

const saRoot = 0

func newSuffixAutomaton(p []rune) *suffixAutomaton {
	sa := &suffixAutomaton{
		states: make([]saState, 0, 2*len(p)+1),
	}
	sa.states = append(sa.states, saState{length: 0, link: -1, next: map[rune]int{}, minEnd: -1, maxEnd: -1})
	sa.last = saRoot

	for pos, c := range p {
		sa.extend(c, pos)
	}
	sa.propagateEndBounds()
	return sa
}

func (sa *suffixAutomaton) extend(c rune, pos int) {
	cur := len(sa.states)
	sa.states = append(sa.states, saState{
		length: sa.states[sa.last].length + 1,
		link:   -1,
		next:   map[rune]int{},
		minEnd: pos,
		maxEnd: pos,
	})

	p := sa.last
	for p != -1 {
		if _, ok := sa.states[p].next[c]; ok {
			break
		}
		sa.states[p].next[c] = cur
		p = sa.states[p].link
	}

	if p == -1 {
		sa.states[cur].link = saRoot
	} else {
		q := sa.states[p].next[c]
		if sa.states[p].length+1 == sa.states[q].length {
			sa.states[cur].link = q
		} else {
			clone := len(sa.states)
			sa.states = append(sa.states, saState{
				length: sa.states[p].length + 1,
				link:   sa.states[q].link,
				next:   copyTransitions(sa.states[q].next),
				minEnd: sa.states[q].minEnd,
				maxEnd: sa.states[q].maxEnd,
			})
			for p != -1 && sa.states[p].next[c] == q {
				sa.states[p].next[c] = clone
				p = sa.states[p].link
			}
			sa.states[q].link = clone
			sa.states[cur].link = clone
		}
	}
	sa.last = cur
}

func copyTransitions(m map[rune]int) map[rune]int {
	out := make(map[rune]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// propagateEndBounds pushes (minEnd, maxEnd) bottom-up along suffix links:
// states sorted by ascending length, iterated in descending order, taking
// min/max with the child's bounds into the parent (link) state (§4.3).
func (sa *suffixAutomaton) propagateEndBounds() {
	order := make([]int, len(sa.states))
	for i := range order {
		order[i] = i
	}
	// Stable sort by ascending length; a simple insertion sort is fine for
	// automaton sizes bounded by pattern length.
	sortByLength(order, sa.states)

	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		link := sa.states[v].link
		if link == -1 {
			continue
		}
		if sa.states[v].minEnd < sa.states[link].minEnd {
			sa.states[link].minEnd = sa.states[v].minEnd
		}
		if sa.states[v].maxEnd > sa.states[link].maxEnd {
			sa.states[link].maxEnd = sa.states[v].maxEnd
		}
	}
}

func sortByLength(order []int, states []saState) {
	// Insertion sort: automaton has at most 2m states, m bounded by a single
	// search string, so O(m^2) here is not a hot path.
	for i := 1; i < len(order); i++ {
		j := i
		for j > 0 && states[order[j-1]].length > states[order[j]].length {
			order[j-1], order[j] = order[j], order[j-1]
			j--
		}
	}
}

// midMatch is one strict-interior occurrence found during the streaming
// scan of T (§4.3).
type midMatch struct {
	flatStart   int
	flatEndExcl int
	matchedLen  int
}

// scanMid streams t through the automaton, emitting a midMatch at every
// position whose current match length reaches minMatchLen and whose state
// is neither a prefix- nor suffix-occurrence of p.
func (sa *suffixAutomaton) scanMid(t []rune, m, minMatchLen int) []midMatch {
	var out []midMatch
	state := saRoot
	length := 0

	for pos, c := range t {
		for state != saRoot {
			if _, ok := sa.states[state].next[c]; ok {
				break
			}
			state = sa.states[state].link
			length = sa.states[state].length
		}
		if next, ok := sa.states[state].next[c]; ok {
			state = next
			length++
		} else {
			state = saRoot
			length = 0
		}

		if length >= minMatchLen && state != saRoot {
			s := sa.states[state]
			isPrefixOccurrence := s.minEnd == length-1
			isSuffixOccurrence := s.maxEnd == m-1
			if !isPrefixOccurrence && !isSuffixOccurrence {
				out = append(out, midMatch{
					flatStart:   pos - length + 1,
					flatEndExcl: pos + 1,
					matchedLen:  length,
				})
			}
		}
	}
	return out
}
