package nfa

import (
	"github.com/go-automata/automata/internal/conv"
	"github.com/go-automata/automata/literal"
)

// Builder is an append-only arena for NFA transitions. State 0 is always
// the sole Eof state (§4.4); every other constructor appends a new state
// and returns its StateID.
type Builder struct {
	transitions []Transition
}

// NewBuilder creates a Builder pre-seeded with the Eof state at index 0.
func NewBuilder() *Builder {
	return &Builder{transitions: []Transition{{Kind: TEof}}}
}

// Len returns the number of states in the arena so far.
func (b *Builder) Len() int {
	return len(b.transitions)
}

// NewLabel appends a Label state that self-loops by default; the self-loop
// is a placeholder dangling edge, patched later via patch.
func (b *Builder) NewLabel(lit literal.Lit) StateID {
	id := StateID(conv.IntToUint32(len(b.transitions)))
	b.transitions = append(b.transitions, labelTransition(lit, id))
	return id
}

// NewSplit appends a Split state. Either slot may be absent (hasA/hasB
// false); absent slots are patched later via patch.
func (b *Builder) NewSplit(a StateID, hasA bool, bb StateID, hasB bool) StateID {
	id := StateID(conv.IntToUint32(len(b.transitions)))
	b.transitions = append(b.transitions, splitTransition(a, hasA, bb, hasB))
	return id
}

// NewAccept appends the terminal accepting state.
func (b *Builder) NewAccept() StateID {
	id := StateID(conv.IntToUint32(len(b.transitions)))
	b.transitions = append(b.transitions, Transition{Kind: TAccept})
	return id
}

// NewGroup appends a Group state stamping label, ε-transitioning to
// currentStart, and returns the new state (callers use it as their new
// start, per §4.4/§4.7).
func (b *Builder) NewGroup(label string, currentStart StateID) StateID {
	id := StateID(conv.IntToUint32(len(b.transitions)))
	b.transitions = append(b.transitions, groupTransition(label, currentStart))
	return id
}

// fragment is a partial NFA under construction: its entry state and the
// still-unconnected output edges (§3's "Fragment").
type fragment struct {
	start StateID
	out   []StateID
}

// patch connects every dangling out-edge of f to target. Each out-state
// must currently be a Label (patch its Next) or a Split with a vacant
// second slot (patch HasB/B); anything else is a builder invariant
// violation (§4.4).
func (b *Builder) patch(f fragment, target StateID) {
	for _, s := range f.out {
		t := &b.transitions[s]
		switch t.Kind {
		case TLabel:
			t.Next = target
		case TSplit:
			t.B = target
			t.HasB = true
		default:
			panic((&BuildError{State: s}).Error())
		}
	}
}

// Transitions returns the arena's transition vector (the slice itself, not
// a copy).
func (b *Builder) Transitions() []Transition {
	return b.transitions
}
