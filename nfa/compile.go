package nfa

import "github.com/go-automata/automata/parse"

// NFA is an immutable compiled automaton: transitions, start state, the
// single accept state, and the eof state at index 0 (§3). The NFA of a
// fused NFASet additionally keeps one eof state per component (see
// offsetTransition); Eof records only the first.
type NFA struct {
	Transitions []Transition
	Start       StateID
	Accept      StateID
	Eof         StateID
}

// Compile builds an NFA from a postfix program using Thompson's
// construction (§4.5). Each token pops the fragments it needs off a
// working stack and pushes exactly one fragment in their place.
func Compile(postfix parse.Postfix) (*NFA, error) {
	b := NewBuilder()
	accept := b.NewAccept()

	if len(postfix.Tokens) == 0 {
		// Empty postfix matches the empty string: start coincides with
		// accept, no transitions needed.
		return &NFA{
			Transitions: b.transitions,
			Start:       accept,
			Accept:      accept,
			Eof:         b.Eof(),
		}, nil
	}

	var stack []fragment

	pop := func(tok parse.Token) (fragment, error) {
		if len(stack) == 0 {
			return fragment{}, &EmptyStackError{Token: tok}
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, nil
	}

	for _, tok := range postfix.Tokens {
		switch tok.Kind {
		case parse.KKleeneS:
			//   -> e
			//  /    \
			// s <----
			//  \
			//   -------->
			e, err := pop(tok)
			if err != nil {
				return nil, err
			}
			s := b.NewSplit(e.start, true, 0, false)
			b.patch(e, s)
			stack = append(stack, fragment{start: s, out: []StateID{s}})

		case parse.KKleeneP:
			//  -----
			// /    |
			// v    |
			// e -> s ->
			e, err := pop(tok)
			if err != nil {
				return nil, err
			}
			s := b.NewSplit(e.start, true, 0, false)
			b.patch(e, s)
			stack = append(stack, fragment{start: e.start, out: []StateID{s}})

		case parse.KOptional:
			//   -> e --\
			//  /        v
			// s
			//  \        ^
			//   -------/
			e, err := pop(tok)
			if err != nil {
				return nil, err
			}
			s := b.NewSplit(e.start, true, 0, false)
			stack = append(stack, fragment{start: s, out: append(e.out, s)})

		case parse.KUnion:
			//  /-> e1 ->
			// s
			//  \-> e2 ->
			e2, err := pop(tok)
			if err != nil {
				return nil, err
			}
			e1, err := pop(tok)
			if err != nil {
				return nil, err
			}
			s := b.NewSplit(e1.start, true, e2.start, true)
			out := append(e1.out, e2.out...)
			stack = append(stack, fragment{start: s, out: out})

		case parse.KConcat:
			// e1 -> e2 ->
			e2, err := pop(tok)
			if err != nil {
				return nil, err
			}
			e1, err := pop(tok)
			if err != nil {
				return nil, err
			}
			b.patch(e1, e2.start)
			stack = append(stack, fragment{start: e1.start, out: e2.out})

		case parse.KRange:
			return nil, ErrUnexpectedRange
		case parse.KOParen:
			return nil, ErrUnexpectedOpenParen
		case parse.KCParen:
			return nil, ErrUnexpectedCloseParen

		case parse.KEOF:
			//   eof
			// s -> accept
			//
			// The right slot is deliberately left vacant (never patched):
			// no non-Eof continuation is reachable from this subexpression.
			s := b.NewSplit(b.Eof(), true, 0, false)
			stack = append(stack, fragment{start: s, out: nil})

		case parse.KLit:
			//   c
			// s ->
			s := b.NewLabel(tok.Lit)
			stack = append(stack, fragment{start: s, out: []StateID{s}})
		}
	}

	if len(stack) != 1 {
		return nil, &NonUnaryStackError{Size: len(stack)}
	}

	f := stack[0]
	b.patch(f, accept)

	return &NFA{
		Transitions: b.transitions,
		Start:       f.start,
		Accept:      accept,
		Eof:         b.Eof(),
	}, nil
}

// Eof returns the reserved eof state, always index 0 (§4.4).
func (b *Builder) Eof() StateID { return 0 }
