package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Identifiers + literals.
	TokIdentifier
	TokNumber

	// Operators.
	TokAssign // '='.
	TokPlus   // '+'.
	TokMinus  // '-'.
	TokStar   // '*'.
	TokSlash  // '/'.

	// Comparisons.
	TokEq    // '=='.
	TokNotEq // '!='.
	TokGt    // '>'.
	TokLt    // '<'.
	TokGtEq  // '>='.
	TokLtEq  // '<='.

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokIdentifier: "IDENTIFIER",
	TokNumber:     "NUMBER",

	TokAssign: "=",
	TokPlus:   "+",
	TokMinus:  "-",
	TokStar:   "*",
	TokSlash:  "/",

	TokEq:    "==",
	TokNotEq: "!=",
	TokGt:    ">",
	TokLt:    "<",
	TokGtEq:  ">=",
	TokLtEq:  "<=",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token.
type Token struct {
	Type  TokenType
	Value string // Literal text as read from the source.
	Num   int64  // Parsed value, only set for TokNumber.
	Line  int    // Line of the first character of the token.

	pos int // Column of the first character of the token.
}

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d:%d]: %.16q", t.Type, t.Line, t.pos, t.Value)
	}
	return fmt.Sprintf("%s[%d:%d]: %q", t.Type, t.Line, t.pos, t.Value)
}

// Describe returns the short form of the token used in diagnostics.
func (t Token) Describe() string {
	switch t.Type {
	case TokEOF:
		return "end of input"
	case TokNumber, TokIdentifier:
		return fmt.Sprintf("%s %q", t.Type, t.Value)
	}
	return fmt.Sprintf("%q", t.Value)
}
