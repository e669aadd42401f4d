package nfa

import (
	"errors"
	"fmt"

	"github.com/go-automata/automata/parse"
)

// Compile-stage sentinel errors (§6, §7): these indicate a parser bug or
// unsupported postfix input rather than a user-facing syntax mistake.
var (
	// ErrUnexpectedOpenParen is returned when '(' appears in a postfix
	// program; valid postfix never contains parenthesis tokens.
	ErrUnexpectedOpenParen = errors.New("unexpected '('")
	// ErrUnexpectedCloseParen is returned when ')' appears in a postfix
	// program.
	ErrUnexpectedCloseParen = errors.New("unexpected ')'")
	// ErrUnexpectedRange is returned when '-' appears in a postfix
	// program; the parser must have already folded it into a Lit(Range).
	ErrUnexpectedRange = errors.New("unexpected '-'")
)

// EmptyStackError is returned when Compile pops an operator but the
// fragment stack does not hold the operands the operator needs.
type EmptyStackError struct {
	Token parse.Token
}

// Error implements the error interface.
func (e *EmptyStackError) Error() string {
	return fmt.Sprintf("empty stack when handling token %q", e.Token.String())
}

// NonUnaryStackError is returned when Compile finishes with a fragment
// stack that does not hold exactly one fragment.
type NonUnaryStackError struct {
	Size int
}

// Error implements the error interface.
func (e *NonUnaryStackError) Error() string {
	return fmt.Sprintf("expected stack of size 1 but the stack had size %d", e.Size)
}

// BuildError reports an invariant violation in the arena builder: a
// fragment's dangling out-edge points at a state that is not Label or
// Split. This can only happen from a bug in the compiler, never from user
// input (§7, "terminates the operation loudly").
type BuildError struct {
	State StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("invalid patch target: state %d is not Label or Split", e.State)
}
