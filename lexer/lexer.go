package lexer

import "unicode/utf8"

// Lexer pulls Spanned tokens out of an input string one at a time, using
// set's compiled grammar (§4.8). It ports the original's Iterator state
// machine to a pull-based Next method: sentEOF/sentErr once set, every
// later Next reports done with no error, matching "when sent_error the
// iterator only produces None".
type Lexer[T any] struct {
	set      *TokenSet[T]
	input    string
	consumed int
	sentEOF  bool
	// sentErr mirrors the original's sent_error flag, set when recovery
	// can't skip forward past a bad byte. Mirrored here for structural
	// fidelity even though it's currently unreachable: Go strings are
	// never empty at the point it would be checked (the eof branch above
	// already handles that case), just as in the original.
	sentErr bool
}

// New creates a Lexer over input driven by set.
func New[T any](set *TokenSet[T], input string) *Lexer[T] {
	return &Lexer[T]{set: set, input: input}
}

// Next returns the next token. done is false once the stream is
// exhausted (including after a terminal, unrecoverable error); when done
// is true and err is non-nil, tok is the zero value and the caller should
// treat err as a recoverable lex error — the lexer has already skipped
// forward and a following Next call may produce more tokens.
func (l *Lexer[T]) Next() (tok Spanned[T], done bool, err error) {
	skipped := l.set.skipChars(l.input)
	l.input = l.input[skipped:]
	l.consumed += skipped

	if l.sentErr || l.sentEOF {
		return Spanned[T]{}, false, nil
	}

	if len(l.input) == 0 {
		l.sentEOF = true
		if l.set.eof == nil {
			return Spanned[T]{}, false, nil
		}
		return Spanned[T]{Start: l.consumed, Token: *l.set.eof, End: l.consumed}, true, nil
	}

	value, n, ok := l.set.nextMatch(l.input)
	if ok {
		start := l.consumed
		l.consumed += n
		l.input = l.input[n:]
		return Spanned[T]{Start: start, Token: value, End: l.consumed}, true, nil
	}

	// l.input is non-empty here (the eof branch above returns otherwise),
	// so there is always at least one rune to skip past the bad byte.
	offset := l.consumed
	_, size := utf8.DecodeRuneInString(l.input)
	l.input = l.input[size:]
	l.consumed += size
	return Spanned[T]{}, true, &LexError{Offset: offset}
}

// All drains the lexer, returning every token and the first error
// encountered (the original's Iterator::collect::<Result<Vec<_>, _>>()).
func (l *Lexer[T]) All() ([]Spanned[T], error) {
	var out []Spanned[T]
	for {
		tok, done, err := l.Next()
		if !done {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, tok)
	}
}
