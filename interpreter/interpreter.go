// Package interpreter evaluates an ast.Program by walking the tree.
package interpreter

import (
	"fmt"

	"go.creack.net/pseudocu/ast"
	"go.creack.net/pseudocu/parser"
)

// Interpreter executes programs against its own Environment.
// Successive runs on the same Interpreter share the Environment.
type Interpreter struct {
	env *Environment
}

// New creates an Interpreter with an empty Environment.
func New() *Interpreter {
	return &Interpreter{env: newEnvironment()}
}

// RunSource runs the whole pipeline on input with a fresh Interpreter.
// The Interpreter is returned along with a runtime error so the bindings made
// before the failure can be inspected; it is nil on lexical or syntax errors.
func RunSource(input string) (*Interpreter, error) {
	prog, err := parser.ParseSource(input)
	if err != nil {
		return nil, err
	}
	ip := New()
	return ip, ip.Run(prog)
}

// Run executes the statements in order and stops at the first failure.
// Bindings made before the failing statement are kept.
func (ip *Interpreter) Run(prog ast.Program) error {
	for _, stmt := range prog.Statements {
		if err := ip.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (ip *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case ast.AssignStmt:
		v, err := ip.Eval(s.Value)
		if err != nil {
			return err
		}
		ip.env.Set(s.Name, v)
		return nil
	case ast.ExpressionStmt:
		_, err := ip.Eval(s.Expression)
		return err
	default:
		panic(fmt.Errorf("unsupported statement type %T", s))
	}
}

// Eval evaluates an expression against the current bindings.
func (ip *Interpreter) Eval(expr ast.Expr) (int64, error) {
	switch e := expr.(type) {
	case ast.NumberExpr:
		return e.Value, nil
	case ast.IdentifierExpr:
		v, ok := ip.env.Get(e.Name)
		if !ok {
			return 0, &RuntimeError{Kind: ErrUndefinedVariable, Name: e.Name}
		}
		return v, nil
	case ast.BinaryExpr:
		// Both sides are always evaluated, left first.
		left, err := ip.Eval(e.Left)
		if err != nil {
			return 0, err
		}
		right, err := ip.Eval(e.Right)
		if err != nil {
			return 0, err
		}
		return apply(e.Operator, left, right)
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}

// Get returns the value bound to name.
func (ip *Interpreter) Get(name string) (int64, bool) {
	return ip.env.Get(name)
}

// Bindings returns the final state, sorted by name.
func (ip *Interpreter) Bindings() []Binding {
	return ip.env.Bindings()
}
