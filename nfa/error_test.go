package nfa

import (
	"testing"

	"github.com/go-automata/automata/parse"
)

func TestEmptyStackError_Error(t *testing.T) {
	err := &EmptyStackError{Token: parse.Token{Kind: parse.KKleeneS}}
	want := `empty stack when handling token "*"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNonUnaryStackError_Error(t *testing.T) {
	err := &NonUnaryStackError{Size: 3}
	want := "expected stack of size 1 but the stack had size 3"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestBuildError_Error(t *testing.T) {
	err := &BuildError{State: StateID(7)}
	want := "invalid patch target: state 7 is not Label or Split"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUnexpectedTokenSentinels_AreDistinct(t *testing.T) {
	sentinels := []error{ErrUnexpectedOpenParen, ErrUnexpectedCloseParen, ErrUnexpectedRange}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			if a == b {
				t.Errorf("sentinels at %d and %d should be distinct, both are %v", i, j, a)
			}
		}
	}
}
