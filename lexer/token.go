// Package lexer drives a fused NFASet over an input string, producing a
// stream of spanned tokens with longest-match semantics and one-character
// skip error recovery (§4.8).
package lexer

import (
	"fmt"
	"sync"

	"github.com/go-automata/automata/lang"
	"github.com/go-automata/automata/nfa"
)

// Spanned pairs a lexed token value with its byte offsets in the original
// input (§3).
type Spanned[T any] struct {
	Start int
	Token T
	End   int
}

// Rule binds one labeled surface pattern to the token value it produces
// (§4.8). Label must be unique within a Definition's Rules.
type Rule[T any] struct {
	Label   string
	Value   T
	Pattern string
}

// Definition is what a caller implements instead of the original's
// impl_token! macro: the token type T's grammar, its end-of-input value
// (if any), and its whitespace-skipping pattern. SkipPattern is an
// overridable point the original declared on its Token trait but every
// impl_token! invocation left at the hardcoded default — this port keeps
// the override real (§3 of SPEC_FULL.md).
type Definition[T any] interface {
	Rules() []Rule[T]
	Eof() (T, bool)
	SkipPattern() string
}

// DefaultSkipPattern is the whitespace-skipping pattern every impl_token!
// call site in the original used.
const DefaultSkipPattern = `(\n|\t|\ )*`

// LexError reports that no rule matched at Offset. Lexer.Next has already
// skipped one rune past Offset when it returns this error, so lexing can
// continue with the next call.
type LexError struct {
	Offset int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unrecognized token at offset %d", e.Offset)
}

// TokenSet is a compiled Definition: a fused NFASet over its rules plus a
// compiled skip pattern, ready to drive a Lexer.
type TokenSet[T any] struct {
	patterns *nfa.NFASet
	skip     *nfa.NFA
	byLabel  map[string]T
	eof      *T
}

// Build compiles every rule in def into one TokenSet (§4.8, replacing the
// original's impl_token! macro). Build is eager and uncached — it reparses
// and recompiles on every call; use Compile for the cached, process-wide
// entry point §4.8/spec.md mandates.
func Build[T any](def Definition[T]) (*TokenSet[T], error) {
	rules := def.Rules()
	if len(rules) == 0 {
		return nil, fmt.Errorf("lexer: Definition must declare at least one rule")
	}

	labeled := make([]nfa.LabeledNFA, 0, len(rules))
	byLabel := make(map[string]T, len(rules))
	for _, r := range rules {
		p, err := lang.TryFromLanguage(r.Pattern)
		if err != nil {
			return nil, err
		}
		labeled = append(labeled, nfa.LabeledNFA{Label: nfa.Label(r.Label), NFA: p.NFA()})
		byLabel[r.Label] = r.Value
	}

	patterns, err := nfa.Build(labeled)
	if err != nil {
		return nil, err
	}

	skipSrc := def.SkipPattern()
	if skipSrc == "" {
		skipSrc = DefaultSkipPattern
	}
	skipPattern, err := lang.TryFromLanguage(skipSrc)
	if err != nil {
		return nil, err
	}

	var eofVal *T
	if v, ok := def.Eof(); ok {
		eofVal = &v
	}

	return &TokenSet[T]{
		patterns: patterns,
		skip:     skipPattern.NFA(),
		byLabel:  byLabel,
		eof:      eofVal,
	}, nil
}

// Compile returns a memoized accessor for def's TokenSet: the NFASet and
// skip NFA are built once, on the first call to the returned func, and
// every later call returns the cached result — the idiomatic Go stand-in
// for the original's per-token-type lazy_static! TOKEN_SET/SKIP_REG
// statics (spec.md: "caches its compiled NfaSet and skip NFA the first
// time they are needed, with lifetime equal to the process... safe to
// share across threads"). sync.OnceValues gives that for free: the first
// caller runs Build and every concurrent/later caller blocks on or reuses
// its result.
//
// Callers reproduce the original's per-macro-call-site caching by storing
// the returned func next to their Definition, e.g.
//
//	var exprTokens = lexer.Compile[ExprToken](exprDef{})
//	...
//	set, err := exprTokens()
func Compile[T any](def Definition[T]) func() (*TokenSet[T], error) {
	return sync.OnceValues(func() (*TokenSet[T], error) {
		return Build(def)
	})
}

// skipChars returns how many leading bytes of input the skip pattern
// consumes (§4.8's skip_chars).
func (s *TokenSet[T]) skipChars(input string) int {
	best := 0
	for _, m := range s.skip.IsMatch(input) {
		if m.Len > best {
			best = m.Len
		}
	}
	return best
}

// nextMatch finds the longest match at the start of input across every
// rule and returns the token value it produces (§4.8's next_match).
func (s *TokenSet[T]) nextMatch(input string) (T, int, bool) {
	var zero T
	best := -1
	var label string

	for _, m := range s.patterns.IsMatch(input) {
		if !m.HasLabel {
			continue
		}
		if m.Len > best {
			best = m.Len
			label = string(m.Label)
		}
	}

	if best < 0 {
		return zero, 0, false
	}
	return s.byLabel[label], best, true
}
