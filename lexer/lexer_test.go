package lexer

import (
	"testing"
)

// exprToken mirrors the original's ExprToken lexer example (§4.8):
// variable-like identifiers, the two arithmetic operators, and numbers.
type exprToken int

const (
	exprVar exprToken = iota
	exprOp
	exprNum
)

type exprDef struct{}

func (exprDef) Rules() []Rule[exprToken] {
	return []Rule[exprToken]{
		{Label: "var", Value: exprVar, Pattern: `(a-z|A-z)(a-z|A-Z|0-9)*`},
		{Label: "op", Value: exprOp, Pattern: `\+|\-`},
		{Label: "num", Value: exprNum, Pattern: `(0-9)+`},
	}
}

func (exprDef) Eof() (exprToken, bool) { return 0, false }
func (exprDef) SkipPattern() string    { return "" }

func mustBuildExprSet(t *testing.T) *TokenSet[exprToken] {
	t.Helper()
	set, err := Build[exprToken](exprDef{})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	return set
}

func TestLexer_TokenizesExpression(t *testing.T) {
	set := mustBuildExprSet(t)
	l := New(set, "one1+two2 - 1 +21 a20")

	spanned, err := l.All()
	if err != nil {
		t.Fatalf("All() returned error: %v", err)
	}

	want := []exprToken{exprVar, exprOp, exprVar, exprOp, exprNum, exprOp, exprNum, exprVar}
	if len(spanned) != len(want) {
		t.Fatalf("All() produced %d tokens, want %d: %v", len(spanned), len(want), spanned)
	}
	for i, s := range spanned {
		if s.Token != want[i] {
			t.Errorf("token[%d] = %v, want %v", i, s.Token, want[i])
		}
	}
}

func TestLexer_UnrecognizedTokenIsAnError(t *testing.T) {
	set := mustBuildExprSet(t)
	l := New(set, "zx + yx - xx * (y / x)")

	if _, err := l.All(); err == nil {
		t.Fatal("All() succeeded, want an error from the unrecognized '*' / '(' / ')'")
	}
}

func TestLexer_RecoversAndReportsEveryUnrecognizedOffset(t *testing.T) {
	set := mustBuildExprSet(t)
	l := New(set, "-2 + 4 + -2 + 2 / 2 !")

	var offsets []int
	for {
		_, done, err := l.Next()
		if !done {
			break
		}
		if err != nil {
			var lexErr *LexError
			if le, ok := err.(*LexError); ok {
				lexErr = le
			}
			if lexErr == nil {
				t.Fatalf("err = %v (%T), want *LexError", err, err)
			}
			offsets = append(offsets, lexErr.Offset)
		}
	}

	want := []int{16, 20}
	if len(offsets) != len(want) {
		t.Fatalf("offsets = %v, want %v", offsets, want)
	}
	for i, o := range offsets {
		if o != want[i] {
			t.Errorf("offsets[%d] = %d, want %d", i, o, want[i])
		}
	}
}

func TestLexer_EmptyInputWithNoEofValueIsDone(t *testing.T) {
	set := mustBuildExprSet(t)
	l := New(set, "")

	_, done, err := l.Next()
	if done || err != nil {
		t.Errorf("Next() on empty input = (done=%v, err=%v), want (false, nil)", done, err)
	}
}

func TestLexer_SkipsWhitespaceBetweenTokens(t *testing.T) {
	set := mustBuildExprSet(t)
	l := New(set, "  \t a1  ")

	spanned, err := l.All()
	if err != nil {
		t.Fatalf("All() returned error: %v", err)
	}
	if len(spanned) != 1 || spanned[0].Token != exprVar {
		t.Fatalf("All() = %v, want a single Var token", spanned)
	}
	if spanned[0].Start != 4 {
		t.Errorf("Start = %d, want 4", spanned[0].Start)
	}
}
