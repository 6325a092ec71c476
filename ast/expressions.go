package ast

import (
	"fmt"
	"strconv"
)

type NumberExpr struct {
	Value int64
}

func (NumberExpr) expr()          {}
func (e NumberExpr) Dump() string { return strconv.FormatInt(e.Value, 10) }

type IdentifierExpr struct {
	Name string
}

func (IdentifierExpr) expr()          {}
func (e IdentifierExpr) Dump() string { return e.Name }

// BinaryExpr owns both of its operands.
type BinaryExpr struct {
	Left     Expr
	Operator Operator
	Right    Expr
}

func (BinaryExpr) expr() {}

func (e BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.Dump(), e.Operator, e.Right.Dump())
}
