package interpreter

import (
	"errors"
	"fmt"
)

// Runtime error kinds.
var (
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrIntegerOverflow   = errors.New("integer overflow")
)

// RuntimeError aborts a run. Name is only set for ErrUndefinedVariable.
type RuntimeError struct {
	Kind error
	Name string
}

func (e *RuntimeError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("runtime error: %s: %s", e.Kind, e.Name)
	}
	return fmt.Sprintf("runtime error: %s", e.Kind)
}

func (e *RuntimeError) Unwrap() error { return e.Kind }
