// Package nfa implements Thompson's construction: compiling a parsed
// postfix regex program into an arena of epsilon-NFA states, and
// simulating that NFA against input using a generation-counter ε-closure
// stepper (§4.4–§4.7).
//
// Resources:
//
//	https://swtch.com/~rsc/regexp/regexp1.html
package nfa

import "github.com/go-automata/automata/literal"

// StateID is a dense non-negative index into an NFA's transition vector.
type StateID uint32

// TransKind identifies which of the five transition variants a state is
// (§3): Label, Split, Group, Eof, Accept.
type TransKind uint8

const (
	// TLabel consumes one rune matching Lit and proceeds to Next.
	TLabel TransKind = iota
	// TSplit is an epsilon transition forking into zero, one, or two
	// successors; a missing slot is represented by hasA/hasB == false.
	TSplit
	// TGroup is an epsilon transition that stamps the active capture
	// label before proceeding to Next.
	TGroup
	// TEof is only reachable at end-of-input.
	TEof
	// TAccept is the terminal accepting state.
	TAccept
)

// Transition is a single NFA state's outgoing edge(s).
type Transition struct {
	Kind TransKind

	// Label: the literal guarding this edge, and its target.
	Lit  literal.Lit
	Next StateID

	// Split: up to two epsilon successors.
	A, B       StateID
	HasA, HasB bool

	// Group: the capture label stamped when this epsilon edge is taken.
	// Next above is reused as the successor state.
	Label string
}

func labelTransition(lit literal.Lit, next StateID) Transition {
	return Transition{Kind: TLabel, Lit: lit, Next: next}
}

func splitTransition(a StateID, hasA bool, b StateID, hasB bool) Transition {
	return Transition{Kind: TSplit, A: a, HasA: hasA, B: b, HasB: hasB}
}

func groupTransition(label string, next StateID) Transition {
	return Transition{Kind: TGroup, Label: label, Next: next}
}
