package parser

import (
	"fmt"

	"go.creack.net/pseudocu/ast"
	"go.creack.net/pseudocu/lexer"
)

// parseExpr parses operators binding tighter than bp. Since the loop only
// continues on a strictly higher binding power, operators of equal power
// group to the left.
func parseExpr(p *parser, bp bindingPower) (ast.Expr, error) {
	// Parse the primary expression, always start with nud.
	nudFn, exists := p.nudLookupTable[p.curToken.Type]
	if !exists {
		return nil, p.errorf("number or identifier")
	}
	left, err := nudFn(p)
	if err != nil {
		return nil, err
	}

	// While we have tokens with a higher binding power, parse them using led.
	for p.bindingPowerLookupTable[p.curToken.Type] > bp {
		ledFn, exists := p.ledLookupTable[p.curToken.Type]
		if !exists {
			return nil, p.errorf("operator")
		}
		left, err = ledFn(p, left, p.bindingPowerLookupTable[p.curToken.Type])
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func parsePrimaryExpr(p *parser) (ast.Expr, error) {
	tok := p.curToken
	switch tok.Type {
	case lexer.TokNumber:
		p.nextToken()
		return ast.NumberExpr{Value: tok.Num}, nil
	case lexer.TokIdentifier:
		p.nextToken()
		return ast.IdentifierExpr{Name: tok.Value}, nil
	default:
		return nil, p.errorf("number or identifier")
	}
}

func parseBinaryExpr(p *parser, left ast.Expr, bp bindingPower) (ast.Expr, error) {
	operator, ok := tokenOperators[p.curToken.Type]
	if !ok {
		panic(fmt.Errorf("no operator for token %s", p.curToken.Type))
	}
	p.nextToken()
	right, err := parseExpr(p, bp)
	if err != nil {
		return nil, err
	}

	return ast.BinaryExpr{
		Left:     left,
		Operator: operator,
		Right:    right,
	}, nil
}
