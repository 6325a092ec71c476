package lexer

import (
	"strconv"
	"strings"
)

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokStar,
	'/': TokSlash,
}

// Operators that may be followed by '='. '!' has no single-character form.
var (
	comparisonSingles = map[rune]TokenType{
		'=': TokAssign,
		'>': TokGt,
		'<': TokLt,
	}
	comparisonDoubles = map[rune]TokenType{
		'=': TokEq,
		'!': TokNotEq,
		'>': TokGtEq,
		'<': TokLtEq,
	}
)

func lexText(l *Lexer) stateFn {
	if l.atEOF {
		return l.emit(TokEOF)
	}

	switch r := l.peek(); {
	case r == eof:
		return l.emit(TokEOF)
	case strings.ContainsRune(whitespaceChars, r):
		l.acceptRun(whitespaceChars)
		l.ignore()
		return lexText
	case strings.ContainsRune("=!<>", r):
		return lexComparison
	case strings.ContainsRune(digitChars, r):
		return lexNumber
	case strings.ContainsRune(identifierStartChars, r):
		return lexIdentifier
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.unexpected(r)
	}
}

func lexComparison(l *Lexer) stateFn {
	r := l.next()
	if l.accept("=") {
		return l.emit(comparisonDoubles[r])
	}
	tt, ok := comparisonSingles[r]
	if !ok {
		// Lone '!'.
		return l.unexpected(r)
	}
	return l.emit(tt)
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digitChars)
	tok := l.thisToken(TokNumber)
	n, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		return l.fail(&Error{Kind: ErrNumberRange, Literal: tok.Value, Line: tok.Line})
	}
	tok.Num = n
	return l.emitToken(tok)
}

func lexIdentifier(l *Lexer) stateFn {
	l.acceptRun(identifierChars)
	return l.emit(TokIdentifier)
}
