// Package ast defines the syntax tree produced by the parser.
package ast

import "strings"

// Expr is any expression node: NumberExpr, IdentifierExpr or BinaryExpr.
type Expr interface {
	Dump() string
	expr()
}

// Stmt is any statement node: AssignStmt or ExpressionStmt.
type Stmt interface {
	Dump() string
	stmt()
}

// Program represents the top-level program.
type Program struct {
	Statements []Stmt // In execution order.
}

// Dump returns one statement per line, with every binary operation parenthesized.
func (p Program) Dump() string {
	var b strings.Builder
	for _, stmt := range p.Statements {
		b.WriteString(stmt.Dump())
		b.WriteByte('\n')
	}
	return b.String()
}
