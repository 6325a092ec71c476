// Package lexer provides the lexical analyzer for the pseudocu language.
package lexer

import (
	"strings"
	"unicode/utf8"
)

const (
	whitespaceChars      = " \t\r\n"
	digitChars           = "0123456789"
	identifierStartChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
	identifierChars      = identifierStartChars + digitChars
)

// eof is returned by next when the input is exhausted.
const eof rune = -1

type Lexer struct {
	input string

	curToken Token
	err      *Error

	atEOF bool

	pos         int // Current position in input.
	line        int // Current line in input.
	linePos     int // Position in the current line.
	prevLineLen int

	start     int // Position of the start of the current token.
	startLine int // Line where the current token started.
	startCol  int // Column where the current token started.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{
		input:     input,
		line:      1,
		startLine: 1,
		startCol:  1,
	}
}

// Tokenize splits the whole input into tokens. The last token is always TokEOF.
// On failure no tokens are returned and the error is a *Error.
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokError {
			return nil, l.err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens, nil
		}
	}
}

// NextToken returns the next token in the input.
// Once a TokError has been returned, the lexer only yields TokEOF.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, Line: l.line, pos: l.linePos + 1}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Err returns the error that stopped the lexer, if any.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	l.linePos += n
	if r == '\n' {
		l.line++
		l.prevLineLen = l.linePos
		l.linePos = 0
	}
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		return
	}
	r, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
	l.linePos -= n
	if r == '\n' {
		l.line--
		l.linePos = l.prevLineLen
	}
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		Line:  l.startLine,
		pos:   l.startCol,
	}
	l.ignore()
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
	l.startLine = l.line
	l.startCol = l.linePos + 1
}

// fail stops the lexer: the current token becomes TokError and the rest of the input is dropped.
func (l *Lexer) fail(err *Error) stateFn {
	l.err = err
	l.curToken = Token{
		Type:  TokError,
		Value: err.Error(),
		Line:  err.Line,
		pos:   l.startCol,
	}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}

func (l *Lexer) unexpected(r rune) stateFn {
	return l.fail(&Error{Kind: ErrUnexpectedChar, Char: r, Line: l.startLine})
}
