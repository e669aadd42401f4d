package parse

import (
	"github.com/go-automata/automata/literal"
)

// Postfix is an ordered sequence of grammar tokens in reverse Polish order.
// After a successful ParsePostfix, the sequence corresponds to exactly one
// well-formed expression; no OParen/CParen tokens appear in it (§3).
type Postfix struct {
	Tokens []Token
}

// ParsePostfix parses source using Pratt-style precedence climbing (§4.3)
// and returns the resulting postfix program.
func ParsePostfix(source string) (Postfix, error) {
	lex := newSurfaceLexer(source)
	tokens, err := parseExpr(lex, 0)
	if err != nil {
		return Postfix{}, err
	}
	if lex.err != nil {
		return Postfix{}, lex.err
	}
	if tok, ok := lex.next(); ok {
		return Postfix{}, errParsingStopped(tok)
	}
	if lex.err != nil {
		return Postfix{}, lex.err
	}
	return Postfix{Tokens: tokens}, nil
}

// parseExpr implements Postfix::parse_expr: consume a prefix, then loop
// absorbing postfix/infix operators whose binding power is >= min.
func parseExpr(lex *surfaceLexer, minPrec int) ([]Token, error) {
	first, ok := lex.next()
	if !ok {
		if lex.err != nil {
			return nil, lex.err
		}
		return nil, errUnexpectedEOF()
	}

	var lhs []Token
	switch first.Kind {
	case KLit:
		lhs = []Token{first}
	case KEOF:
		lhs = []Token{first}
	case KOParen:
		inner, err := parseExpr(lex, 0)
		if err != nil {
			return nil, err
		}
		closing, ok := lex.next()
		if !ok || closing.Kind != KCParen {
			return nil, errUnmatched("(")
		}
		lhs = inner
	default:
		return nil, errInvalidPrefix(first)
	}

	for {
		tok, ok := lex.peek()
		if !ok {
			break
		}

		if postPrec, isPostfix := tok.PostfixPrecedence(); isPostfix {
			if postPrec < minPrec {
				break
			}
			tok, _ = lex.next()
			lhs = append(lhs, tok)
			continue
		}

		if leftPrec, rightPrec, isInfix := tok.InfixPrecedence(); isInfix {
			if leftPrec < minPrec {
				break
			}
			tok, _ = lex.next()

			rhs, err := parseExpr(lex, rightPrec)
			if err != nil {
				return nil, err
			}

			if tok.Kind == KRange {
				left := lhs[len(lhs)-1]
				lhs = lhs[:len(lhs)-1]
				right := rhs[len(rhs)-1]
				rhs = rhs[:len(rhs)-1]

				if left.Kind == KLit && left.Lit.Kind == literal.Char &&
					right.Kind == KLit && right.Lit.Kind == literal.Char {
					lhs = append(lhs, tLit(literal.NewRange(left.Lit.Ch, right.Lit.Ch)))
				} else {
					return nil, errInvalidRange("(" + left.String() + "-" + right.String() + ")")
				}
			} else {
				lhs = append(lhs, rhs...)
				lhs = append(lhs, tok)
			}
			continue
		}

		break
	}

	return lhs, nil
}

// String renders the postfix program as a fully-parenthesized infix form,
// matching the original Display impl (used by the round-trip property of
// §8 and scenario 7).
func (p Postfix) String() string {
	var stack []string

	for _, tok := range p.Tokens {
		switch tok.Kind {
		case KEOF, KOParen, KCParen, KLit:
			stack = append(stack, tok.String())
		case KOptional, KKleeneS, KKleeneP:
			lhs := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack = append(stack, "("+lhs+tok.String()+")")
		case KRange, KConcat, KUnion:
			rhs := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			lhs := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack = append(stack, "("+lhs+tok.String()+rhs+")")
		}
	}

	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1]
}
