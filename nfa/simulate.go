package nfa

import "unicode/utf8"

// Label identifies a top-level pattern inside a fused NfaSet (§3). The
// zero value "" never appears in a real Match — NoGroup matches carry no
// label at all (HasLabel == false).
type Label string

// Match pairs an optional capture label with a byte length measured from
// the start of the input (§3).
type Match struct {
	Label    Label
	HasLabel bool
	Len      int
}

// frontierEntry is one (active capture label, state) pair held in a
// frontier list during simulation.
type frontierEntry struct {
	label    Label
	hasLabel bool
	state    StateID
}

// simState carries the scratch data a single Simulate call owns: the two
// frontier lists, the generation tracker, and the running match table
// (§3 "Lifecycle": "all transient data ... lives for one is_match call").
type simState struct {
	nfa        *NFA
	gen        *generationTracker
	matches    map[Label]matchEntry
	noGroup    int
	hasNoGroup bool
	consumed   int
}

type matchEntry struct {
	length int
}

// addState performs an ε-closure for a single state, recursing through
// Split and Group transitions and recording accept-state matches
// (§4.6's add_state).
func (s *simState) addState(list *[]frontierEntry, label Label, hasLabel bool, state StateID) {
	// A fused NFASet shares one accept state across all components, so the
	// match is recorded before the visited check: every label that reaches
	// accept in this step keeps its own (longest) length.
	if state == s.nfa.Accept {
		if hasLabel {
			s.matches[label] = matchEntry{length: s.consumed}
		} else {
			s.noGroup = s.consumed
			s.hasNoGroup = true
		}
	}
	if s.gen.isVisited(state) {
		return
	}

	t := &s.nfa.Transitions[state]
	switch t.Kind {
	case TSplit:
		if t.HasA {
			s.addState(list, label, hasLabel, t.A)
		}
		if t.HasB {
			s.addState(list, label, hasLabel, t.B)
		}
	case TGroup:
		// The innermost Group wins by LIFO traversal order: the active
		// label is simply overwritten on recursion.
		s.addState(list, Label(t.Label), true, t.Next)
	case TLabel, TAccept:
		s.gen.markVisited(state)
		*list = append(*list, frontierEntry{label: label, hasLabel: hasLabel, state: state})
	case TEof:
		s.gen.markVisited(state)
		*list = append(*list, frontierEntry{label: label, hasLabel: hasLabel, state: state})
	}
}

// Simulate runs the two-frontier ε-closure stepper over input and returns
// every match found: accept-state matches (longest per label) plus any
// Eof matches at end of input (§4.6).
func Simulate(nfa *NFA, input string) []Match {
	s := &simState{
		nfa:     nfa,
		gen:     newGenerationTracker(len(nfa.Transitions)),
		matches: make(map[Label]matchEntry),
	}

	current := make([]frontierEntry, 0, len(nfa.Transitions))
	next := make([]frontierEntry, 0, len(nfa.Transitions))

	s.addState(&current, "", false, nfa.Start)

	for _, r := range input {
		s.gen.advance()
		s.consumed += utf8.RuneLen(r)

		for _, entry := range current {
			t := &nfa.Transitions[entry.state]
			if t.Kind == TLabel && t.Lit.Accepts(r) {
				s.addState(&next, entry.label, entry.hasLabel, t.Next)
			}
			// Accept and Eof in the frontier are dropped: Accept already
			// recorded its match when it was added, and Eof must only
			// match when the input is fully consumed.
		}

		current, next = next, current[:0]
	}

	var out []Match
	for label, m := range s.matches {
		out = append(out, Match{Label: label, HasLabel: true, Len: m.length})
	}
	if s.hasNoGroup {
		out = append(out, Match{Len: s.noGroup})
	}

	for _, entry := range current {
		// Identify eof states structurally rather than by comparing
		// against a single recorded ID: a fused NFASet holds one
		// eof-kind state per component (§4.7), each at its own index.
		if nfa.Transitions[entry.state].Kind == TEof {
			out = append(out, Match{Label: entry.label, HasLabel: entry.hasLabel, Len: len(input)})
		}
	}

	return out
}

// IsMatch is the convenience entry point matching the Language interface
// (§4.9): anchored match starting at offset 0 of input.
func (n *NFA) IsMatch(input string) []Match {
	return Simulate(n, input)
}
