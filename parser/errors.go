package parser

import (
	"errors"
	"fmt"

	"go.creack.net/pseudocu/lexer"
)

// ErrSyntax is wrapped by every *Error.
var ErrSyntax = errors.New("syntax error")

// Error reports the first grammar violation found in the token stream.
type Error struct {
	Expected string
	Found    lexer.Token
	Line     int
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error: expected %s, found %s at line %d", e.Expected, e.Found.Describe(), e.Line)
}

func (e *Error) Unwrap() error { return ErrSyntax }
