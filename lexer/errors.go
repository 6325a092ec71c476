package lexer

import (
	"errors"
	"fmt"
)

// Lexical error kinds.
var (
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrNumberRange    = errors.New("integer literal out of range")
)

// Error is returned by Tokenize when the input can't be split into tokens.
// Either Char or Literal is set depending on the kind.
type Error struct {
	Kind    error
	Char    rune
	Literal string
	Line    int
}

func (e *Error) Error() string {
	if e.Literal != "" {
		return fmt.Sprintf("lex error: %s: %s at line %d", e.Kind, e.Literal, e.Line)
	}
	return fmt.Sprintf("lex error: %s %q at line %d", e.Kind, e.Char, e.Line)
}

func (e *Error) Unwrap() error { return e.Kind }
