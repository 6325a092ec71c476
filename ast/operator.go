package ast

// Operator is a binary operator.
type Operator int

// Operators as constants.
const (
	OpPlus Operator = iota
	OpMinus
	OpMultiply
	OpDivide
	OpEq
	OpNotEq
	OpGt
	OpLt
	OpGtEq
	OpLtEq
)

var operatorStrings = [...]string{
	OpPlus:     "+",
	OpMinus:    "-",
	OpMultiply: "*",
	OpDivide:   "/",
	OpEq:       "==",
	OpNotEq:    "!=",
	OpGt:       ">",
	OpLt:       "<",
	OpGtEq:     ">=",
	OpLtEq:     "<=",
}

// String returns the source form of the operator.
func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorStrings) {
		return "?"
	}
	return operatorStrings[op]
}

// IsComparison reports whether the operator yields 0 or 1.
func (op Operator) IsComparison() bool {
	return op >= OpEq && op <= OpLtEq
}
