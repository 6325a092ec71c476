package ast

type AssignStmt struct {
	Name  string
	Value Expr
}

func (AssignStmt) stmt()          {}
func (s AssignStmt) Dump() string { return s.Name + " = " + s.Value.Dump() }

type ExpressionStmt struct {
	Expression Expr
}

func (ExpressionStmt) stmt()          {}
func (s ExpressionStmt) Dump() string { return s.Expression.Dump() }
