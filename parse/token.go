package parse

import "github.com/go-automata/automata/literal"

// Kind identifies one of the grammar tokens of §3.
type Kind uint8

const (
	// KEOF matches the end of input, '$'.
	KEOF Kind = iota
	// KOParen is '('.
	KOParen
	// KCParen is ')'.
	KCParen
	// KKleeneS is the postfix Kleene star, '*'.
	KKleeneS
	// KKleeneP is the postfix Kleene plus, '+'.
	KKleeneP
	// KOptional is the postfix '?'.
	KOptional
	// KUnion is the infix '|'.
	KUnion
	// KConcat is implicit infix concatenation; never written by the user.
	KConcat
	// KRange is the infix '-', valid only between two character literals.
	KRange
	// KLit carries a literal.Lit value.
	KLit
)

// Token is a single grammar token (§3). Only KLit populates Lit.
type Token struct {
	Kind Kind
	Lit  literal.Lit
}

func tEOF() Token      { return Token{Kind: KEOF} }
func tOParen() Token   { return Token{Kind: KOParen} }
func tCParen() Token   { return Token{Kind: KCParen} }
func tKleeneS() Token  { return Token{Kind: KKleeneS} }
func tKleeneP() Token  { return Token{Kind: KKleeneP} }
func tOptional() Token { return Token{Kind: KOptional} }
func tUnion() Token    { return Token{Kind: KUnion} }
func tConcat() Token   { return Token{Kind: KConcat} }
func tRange() Token    { return Token{Kind: KRange} }
func tLit(l literal.Lit) Token { return Token{Kind: KLit, Lit: l} }

// InfixPrecedence returns (left, right) binding power for infix operators,
// and ok=false for tokens that are not infix operators (§4.3).
func (t Token) InfixPrecedence() (left, right int, ok bool) {
	switch t.Kind {
	case KRange:
		return 12, 11, true
	case KConcat:
		return 4, 3, true
	case KUnion:
		return 2, 1, true
	default:
		return 0, 0, false
	}
}

// PostfixPrecedence returns the binding power of a postfix operator, and
// ok=false for tokens that are not postfix operators (§4.3).
func (t Token) PostfixPrecedence() (prec int, ok bool) {
	switch t.Kind {
	case KKleeneS, KKleeneP:
		return 10, true
	case KOptional:
		return 9, true
	default:
		return 0, false
	}
}

// String renders the token as its surface-syntax spelling, used in error
// messages and Postfix.String().
func (t Token) String() string {
	switch t.Kind {
	case KOParen:
		return "("
	case KCParen:
		return ")"
	case KKleeneS:
		return "*"
	case KKleeneP:
		return "+"
	case KConcat:
		return ""
	case KUnion:
		return "|"
	case KOptional:
		return "?"
	case KRange:
		return "-"
	case KEOF:
		return "$"
	case KLit:
		return t.Lit.String()
	default:
		return "?"
	}
}
