package parser

import (
	"go.creack.net/pseudocu/ast"
	"go.creack.net/pseudocu/lexer"
)

type bindingPower int

const (
	bpDefault bindingPower = iota
	bpComparison
	bpAdditive
	bpMultiplicative
	bpPrimary
)

type stmtHandler func(*parser) (ast.Stmt, error)
type nudHandler func(*parser) (ast.Expr, error)
type ledHandler func(*parser, ast.Expr, bindingPower) (ast.Expr, error)

type lookupTable[T any] map[lexer.TokenType]T

// tokenOperators maps infix tokens to their AST operator.
var tokenOperators = map[lexer.TokenType]ast.Operator{
	lexer.TokPlus:  ast.OpPlus,
	lexer.TokMinus: ast.OpMinus,
	lexer.TokStar:  ast.OpMultiply,
	lexer.TokSlash: ast.OpDivide,
	lexer.TokEq:    ast.OpEq,
	lexer.TokNotEq: ast.OpNotEq,
	lexer.TokGt:    ast.OpGt,
	lexer.TokLt:    ast.OpLt,
	lexer.TokGtEq:  ast.OpGtEq,
	lexer.TokLtEq:  ast.OpLtEq,
}

func (p *parser) led(kind lexer.TokenType, bp bindingPower, fn ledHandler) {
	if _, ok := p.ledLookupTable[kind]; ok {
		panic("duplicate led handler")
	}
	p.ledLookupTable[kind] = fn
	p.bindingPowerLookupTable[kind] = bp
}

func (p *parser) nud(kind lexer.TokenType, fn nudHandler) {
	if _, ok := p.nudLookupTable[kind]; ok {
		panic("duplicate nud handler")
	}
	p.nudLookupTable[kind] = fn
}

func (p *parser) stmt(kind lexer.TokenType, fn stmtHandler) {
	if _, ok := p.stmtLookupTable[kind]; ok {
		panic("duplicate stmt handler")
	}
	p.stmtLookupTable[kind] = fn
	p.bindingPowerLookupTable[kind] = bpDefault
}

func (p *parser) createTokenLookups() {
	// Statements starting with an identifier may be assignments.
	p.stmt(lexer.TokIdentifier, parseIdentifierStmt)

	// Comparisons.
	p.led(lexer.TokEq, bpComparison, parseBinaryExpr)
	p.led(lexer.TokNotEq, bpComparison, parseBinaryExpr)
	p.led(lexer.TokGt, bpComparison, parseBinaryExpr)
	p.led(lexer.TokLt, bpComparison, parseBinaryExpr)
	p.led(lexer.TokGtEq, bpComparison, parseBinaryExpr)
	p.led(lexer.TokLtEq, bpComparison, parseBinaryExpr)

	// Additive & multiplicative.
	p.led(lexer.TokPlus, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokMinus, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokStar, bpMultiplicative, parseBinaryExpr)
	p.led(lexer.TokSlash, bpMultiplicative, parseBinaryExpr)

	// Literals & symbols.
	p.nud(lexer.TokNumber, parsePrimaryExpr)
	p.nud(lexer.TokIdentifier, parsePrimaryExpr)
}
