package interpreter

import (
	"math"

	"go.creack.net/pseudocu/ast"
)

// apply evaluates a binary operator. Arithmetic leaving the int64 range fails
// with ErrIntegerOverflow instead of wrapping.
func apply(op ast.Operator, left, right int64) (int64, error) {
	switch op {
	case ast.OpPlus:
		sum := left + right
		if (left > 0 && right > 0 && sum < 0) || (left < 0 && right < 0 && sum >= 0) {
			return 0, &RuntimeError{Kind: ErrIntegerOverflow}
		}
		return sum, nil
	case ast.OpMinus:
		diff := left - right
		if (right < 0 && diff < left) || (right > 0 && diff > left) {
			return 0, &RuntimeError{Kind: ErrIntegerOverflow}
		}
		return diff, nil
	case ast.OpMultiply:
		if left == 0 || right == 0 {
			return 0, nil
		}
		product := left * right
		if product/right != left || (left == -1 && right == math.MinInt64) || (right == -1 && left == math.MinInt64) {
			return 0, &RuntimeError{Kind: ErrIntegerOverflow}
		}
		return product, nil
	case ast.OpDivide:
		if right == 0 {
			return 0, &RuntimeError{Kind: ErrDivisionByZero}
		}
		if left == math.MinInt64 && right == -1 {
			return 0, &RuntimeError{Kind: ErrIntegerOverflow}
		}
		return left / right, nil
	case ast.OpEq:
		return boolToInt(left == right), nil
	case ast.OpNotEq:
		return boolToInt(left != right), nil
	case ast.OpGt:
		return boolToInt(left > right), nil
	case ast.OpLt:
		return boolToInt(left < right), nil
	case ast.OpGtEq:
		return boolToInt(left >= right), nil
	case ast.OpLtEq:
		return boolToInt(left <= right), nil
	default:
		panic("unsupported operator " + op.String())
	}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
