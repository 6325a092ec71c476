// Package parser builds an ast.Program out of a token stream.
package parser

import (
	"go.creack.net/pseudocu/ast"
	"go.creack.net/pseudocu/lexer"
)

type parser struct {
	tokens []lexer.Token
	pos    int // Index of the token following curToken.

	prevToken lexer.Token
	curToken  lexer.Token

	stmtLookupTable         lookupTable[stmtHandler]
	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	bindingPowerLookupTable lookupTable[bindingPower]
}

func newParser(tokens []lexer.Token) *parser {
	p := &parser{
		tokens: tokens,

		stmtLookupTable:         lookupTable[stmtHandler]{},
		nudLookupTable:          lookupTable[nudHandler]{},
		ledLookupTable:          lookupTable[ledHandler]{},
		bindingPowerLookupTable: lookupTable[bindingPower]{},
	}
	p.createTokenLookups()
	p.nextToken()
	return p
}

// Parse parses a whole program. The token stream is expected to end with
// lexer.TokEOF, a missing one is assumed. A stream holding only TokEOF yields
// an empty program. The error, if any, is a *Error.
func Parse(tokens []lexer.Token) (ast.Program, error) {
	var stmts []ast.Stmt

	p := newParser(tokens)
	for p.curToken.Type != lexer.TokEOF {
		stmt, err := parseStmt(p)
		if err != nil {
			return ast.Program{}, err
		}
		stmts = append(stmts, stmt)
	}

	return ast.Program{Statements: stmts}, nil
}

// ParseExpression parses a single expression spanning the whole token stream.
func ParseExpression(tokens []lexer.Token) (ast.Expr, error) {
	p := newParser(tokens)
	expression, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	if err := p.expect("end of input", lexer.TokEOF); err != nil {
		return nil, err
	}
	return expression, nil
}

// ParseSource tokenizes then parses the given source.
// The error is either a *lexer.Error or a *Error.
func ParseSource(input string) (ast.Program, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return ast.Program{}, err
	}
	return Parse(tokens)
}

func (p *parser) tokenAt(i int) lexer.Token {
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	tok := lexer.Token{Type: lexer.TokEOF, Line: 1}
	if len(p.tokens) > 0 {
		tok.Line = p.tokens[len(p.tokens)-1].Line
	}
	return tok
}

func (p *parser) nextToken() lexer.Token {
	p.prevToken = p.curToken
	p.curToken = p.tokenAt(p.pos)
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return p.curToken
}

func (p *parser) peek() lexer.Token {
	return p.tokenAt(p.pos)
}

// expect checks if the current token is of the expected type.
func (p *parser) expect(expected string, kind ...lexer.TokenType) error {
	if p.curToken.Type.IsOneOf(kind...) {
		return nil
	}
	return p.errorf(expected)
}

func (p *parser) errorf(expected string) error {
	return &Error{
		Expected: expected,
		Found:    p.curToken,
		Line:     p.curToken.Line,
	}
}
