// Package lang ties the surface parser and the NFA compiler together
// behind one entry point, and defines the Language surface every
// matchable type in this module implements (§4.9).
package lang

import (
	"fmt"

	"github.com/go-automata/automata/nfa"
	"github.com/go-automata/automata/parse"
)

// Language is implemented by every matchable automaton in this module —
// *nfa.NFA, *nfa.NFASet, and *Pattern — satisfying §4.9's single matcher
// surface.
type Language interface {
	// IsMatch checks input against the automaton, anchored at offset 0,
	// and returns every match found (longest per label, plus any
	// no-group match and any eof match).
	IsMatch(input string) []nfa.Match
}

// Renderer is implemented additionally by types that can reproduce their
// originating surface syntax, such as Pattern (§4.9's to_language).
type Renderer interface {
	ToLanguage() string
}

// LanguageError wraps either a parse-time or compile-time failure behind
// one error type, mirroring the original's LanguageError enum.
type LanguageError struct {
	ParseErr   *parse.ParseError
	CompileErr error
}

func (e *LanguageError) Error() string {
	if e.ParseErr != nil {
		return fmt.Sprintf("parse error: %s", e.ParseErr.Error())
	}
	return fmt.Sprintf("compile error: %s", e.CompileErr.Error())
}

func (e *LanguageError) Unwrap() error {
	if e.ParseErr != nil {
		return e.ParseErr
	}
	return e.CompileErr
}

// Pattern is the *nfa.NFA's implementation of Language, compiled from a
// single surface-syntax pattern via TryFromLanguage.
type Pattern struct {
	nfa     *nfa.NFA
	postfix parse.Postfix
}

// TryFromLanguage parses and compiles source into a Pattern (§4.9's
// try_from_language). Parse failures and compile failures are both
// reported as a *LanguageError.
func TryFromLanguage(source string) (*Pattern, error) {
	postfix, err := parse.ParsePostfix(source)
	if err != nil {
		return nil, &LanguageError{ParseErr: err.(*parse.ParseError)}
	}

	compiled, err := nfa.Compile(postfix)
	if err != nil {
		return nil, &LanguageError{CompileErr: err}
	}

	return &Pattern{nfa: compiled, postfix: postfix}, nil
}

// IsMatch implements Language.
func (p *Pattern) IsMatch(input string) []nfa.Match {
	return p.nfa.IsMatch(input)
}

// ToLanguage implements Renderer by rendering the compiled postfix
// program back to fully-parenthesized infix form.
func (p *Pattern) ToLanguage() string {
	return p.postfix.String()
}

// NFA exposes the compiled automaton for callers that need it directly,
// e.g. to build a Label/NFA pair for nfa.Build.
func (p *Pattern) NFA() *nfa.NFA {
	return p.nfa
}
