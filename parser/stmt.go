package parser

import (
	"go.creack.net/pseudocu/ast"
	"go.creack.net/pseudocu/lexer"
)

func parseStmt(p *parser) (ast.Stmt, error) {
	stmtFn, exists := p.stmtLookupTable[p.curToken.Type]
	if exists {
		return stmtFn(p)
	}
	return parseExpressionStmt(p)
}

func parseExpressionStmt(p *parser) (ast.Stmt, error) {
	expression, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	return ast.ExpressionStmt{
		Expression: expression,
	}, nil
}

// parseIdentifierStmt parses `name = expr`. Without a '=' right after the
// identifier, the identifier starts a regular expression statement instead.
func parseIdentifierStmt(p *parser) (ast.Stmt, error) {
	if p.peek().Type != lexer.TokAssign {
		return parseExpressionStmt(p)
	}
	name := p.curToken.Value
	p.nextToken() // Consume the identifier.
	p.nextToken() // Consume the '='.

	value, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	return ast.AssignStmt{
		Name:  name,
		Value: value,
	}, nil
}
