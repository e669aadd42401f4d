package nfa

import (
	"fmt"

	"github.com/coregx/ahocorasick"
	"github.com/go-automata/automata/internal/conv"
)

// LabeledNFA pairs a capture label with the NFA compiled for it, the input
// to NFASet.Build (§4.7).
type LabeledNFA struct {
	Label Label
	NFA   *NFA
}

// NFASet fuses multiple labeled NFAs into one automaton in which every
// accept path carries a distinct label (§4.7). Fixed-string components
// (§3 of SPEC_FULL.md) are additionally indexed by single-pattern
// Aho-Corasick automatons so the lexer driver can skip ε-closure
// simulation for keyword-shaped tokens.
type NFASet struct {
	NFA *NFA

	// fixedLiterals holds, for each component whose NFA.IsFixed() reported
	// true before fusion, the literal string it matches and a compiled
	// single-pattern automaton for it. Only consulted as a fast path when
	// allFixed is true — if even one component needs the general
	// simulator, every component does, since a fixed literal can be a
	// strict prefix of a longer match from a non-fixed component (e.g.
	// keyword "do" vs identifier pattern "do_something") and only
	// Simulate knows how to pick the longest match across all of them.
	fixedLiterals []fixedLiteral
	allFixed      bool
}

type fixedLiteral struct {
	label Label
	text  string
	auto  *ahocorasick.Automaton
}

// Build fuses nfas into a single NFASet. Fails if nfas is empty (§4.7).
func Build(nfas []LabeledNFA) (*NFASet, error) {
	if len(nfas) == 0 {
		return nil, fmt.Errorf("nfaset: at least one NFA must be provided")
	}

	set := &NFASet{allFixed: true}

	// Fixed-string detection runs on each component's pre-wrap graph: the
	// Group state Build wraps every component in is itself an epsilon
	// edge, but checking before wrapping keeps the property obviously
	// correct regardless of how IsFixed treats Group (see IsFixed's doc).
	for _, c := range nfas {
		text, ok := c.NFA.fixedString()
		if !ok {
			set.allFixed = false
			continue
		}

		builder := ahocorasick.NewBuilder()
		builder.AddPattern([]byte(text))
		auto, err := builder.Build()
		if err != nil {
			set.allFixed = false
			continue
		}

		set.fixedLiterals = append(set.fixedLiterals, fixedLiteral{
			label: c.Label,
			text:  text,
			auto:  auto,
		})
	}

	base := wrapWithGroup(nfas[0].Label, nfas[0].NFA)

	for _, c := range nfas[1:] {
		next := wrapWithGroup(c.Label, c.NFA)
		offset := StateID(conv.IntToUint32(len(base.Transitions)))

		shifted := make([]Transition, len(next.Transitions))
		for i, t := range next.Transitions {
			shifted[i] = offsetTransition(t, next.Accept, base.Accept, offset)
		}

		base.Transitions = append(base.Transitions, shifted...)

		splitID := StateID(conv.IntToUint32(len(base.Transitions)))
		base.Transitions = append(base.Transitions, splitTransition(base.Start, true, next.Start+offset, true))
		base.Start = splitID
	}

	set.NFA = base
	return set, nil
}

// wrapWithGroup prepends a Group state carrying label to nfa, making the
// Group the new start (§4.7: "Each component NFA is wrapped with a new
// Group state carrying its label, which becomes the new start").
func wrapWithGroup(label Label, nfa *NFA) *NFA {
	transitions := make([]Transition, len(nfa.Transitions), len(nfa.Transitions)+1)
	copy(transitions, nfa.Transitions)
	groupID := StateID(conv.IntToUint32(len(transitions)))
	transitions = append(transitions, groupTransition(string(label), nfa.Start))

	return &NFA{
		Transitions: transitions,
		Start:       groupID,
		Accept:      nfa.Accept,
		Eof:         nfa.Eof,
	}
}

// offsetTransition shifts every state reference inside t by offset, except
// that any edge into localAccept is redirected to baseAccept (§4.7). Edges
// into the component's own local eof state are not special-cased: they
// get the same "+offset" treatment as any other state, which correctly
// lands them on that component's own eof-kind transition once it is
// appended at its new offset position. Each fused component therefore
// keeps its own eof state rather than sharing one global eof — Simulate
// identifies eof states by Transition.Kind, not by a single recorded ID.
func offsetTransition(t Transition, localAccept, baseAccept, offset StateID) Transition {
	redirect := func(s StateID) StateID {
		if s == localAccept {
			return baseAccept
		}
		return s + offset
	}

	switch t.Kind {
	case TLabel:
		t.Next = redirect(t.Next)
	case TSplit:
		if t.HasA {
			t.A = redirect(t.A)
		}
		if t.HasB {
			t.B = redirect(t.B)
		}
	case TGroup:
		t.Next = redirect(t.Next)
	case TAccept, TEof:
		// Accept/Eof carry no outgoing state reference to shift.
	}
	return t
}

// IsMatch reports every match at the start of input (§4.9 Language
// surface). When every component is a fixed string, it answers directly
// from the per-label Aho-Corasick automatons instead of running the
// general simulator (§2/§3 of SPEC_FULL.md); otherwise it falls back to
// Simulate, since only the general simulator can correctly rank a fixed
// literal against a longer match from a non-fixed component.
func (s *NFASet) IsMatch(input string) []Match {
	if !s.allFixed {
		return Simulate(s.NFA, input)
	}

	var out []Match
	for _, fl := range s.fixedLiterals {
		if m := fl.auto.Find([]byte(input), 0); m != nil && m.Start == 0 {
			out = append(out, Match{Label: fl.label, HasLabel: true, Len: m.End - m.Start})
		}
	}
	return out
}
