package nfa

import (
	"strings"

	"github.com/go-automata/automata/literal"
)

// IsFixed reports whether n matches exactly one fixed string: true iff no
// Split with either slot populated is reachable from Start, and every
// reachable Label guards a single Unicode scalar rather than a range or
// wildcard (ported from the original's dead is_fixed, revived here to
// drive the NFASet Aho-Corasick fast path — §3/§2 of SPEC_FULL.md).
//
// Unlike the original, Group edges are followed rather than stopping the
// walk — harmless for the pre-wrap components this package calls it on,
// and correct if ever called on an already-fused graph.
func (n *NFA) IsFixed() bool {
	var stack []StateID
	stack = append(stack, n.Start)

	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t := &n.Transitions[state]
		switch t.Kind {
		case TLabel:
			if t.Lit.Kind != literal.Char {
				return false
			}
			stack = append(stack, t.Next)
		case TSplit:
			if t.HasA || t.HasB {
				return false
			}
		case TGroup:
			stack = append(stack, t.Next)
		case TAccept, TEof:
		}
	}

	return true
}

// fixedString walks the deterministic Label chain from Start and returns
// the literal string it spells out, valid only when IsFixed reports true
// (no branching can be present along the way).
func (n *NFA) fixedString() (string, bool) {
	if !n.IsFixed() {
		return "", false
	}

	var sb strings.Builder
	state := n.Start
	for {
		t := &n.Transitions[state]
		switch t.Kind {
		case TLabel:
			sb.WriteRune(t.Lit.Ch)
			state = t.Next
		case TGroup:
			state = t.Next
		default:
			return sb.String(), true
		}
	}
}

// Generate enumerates distinct strings n accepts, each no longer than
// maxLen, walking the NFA depth-first and treating Split/Group as epsilon
// branches (ported from the original's NFA::generate, supplemented per §3
// of SPEC_FULL.md). A Range literal contributes only its low end and Any
// contributes a single representative scalar — both variants are
// open-ended, and a generator that expanded them fully would never
// terminate for patterns like ".*".
func (n *NFA) Generate(maxLen int) []string {
	type frame struct {
		prefix string
		state  StateID
	}

	done := make(map[string]struct{})
	stack := []frame{{prefix: "", state: n.Start}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(f.prefix) > maxLen {
			continue
		}

		t := &n.Transitions[f.state]
		switch t.Kind {
		case TLabel:
			var r rune
			switch t.Lit.Kind {
			case literal.Any:
				r = 'a'
			case literal.Range:
				r = t.Lit.Lo
			default:
				r = t.Lit.Ch
			}
			stack = append(stack, frame{prefix: f.prefix + string(r), state: t.Next})
		case TSplit:
			if t.HasA {
				stack = append(stack, frame{prefix: f.prefix, state: t.A})
			}
			if t.HasB {
				stack = append(stack, frame{prefix: f.prefix, state: t.B})
			}
		case TGroup:
			stack = append(stack, frame{prefix: f.prefix, state: t.Next})
		case TAccept, TEof:
			done[f.prefix] = struct{}{}
		}
	}

	out := make([]string, 0, len(done))
	for s := range done {
		out = append(out, s)
	}
	return out
}
