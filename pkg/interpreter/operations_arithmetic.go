package interpreter

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/giovannicarlino04/Pipeline/pkg/runtime"
)

// maxRepeatBytes bounds string repetition ("ab" * n).
const maxRepeatBytes = 1 << 24

func applyBinaryOperator(op string, left runtime.Value, right runtime.Value) (runtime.Value, error) {
	if op == "/" {
		return evaluateDivision(left, right)
	}
	li, lInt := left.(runtime.IntegerValue)
	ri, rInt := right.(runtime.IntegerValue)
	switch {
	case lInt && rInt:
		return evaluateIntegerArithmetic(op, li, ri)
	case runtime.IsNumeric(left) && runtime.IsNumeric(right):
		lf, _ := runtime.ToFloat(left)
		rf, _ := runtime.ToFloat(right)
		return evaluateFloatArithmetic(op, lf, rf)
	}
	return evaluateStringArithmetic(op, left, right)
}

func evaluateDivision(left runtime.Value, right runtime.Value) (runtime.Value, error) {
	lf, lok := runtime.ToFloat(left)
	rf, rok := runtime.ToFloat(right)
	if !lok || !rok {
		return nil, unsupportedOperands("/", left, right)
	}
	if rf == 0 {
		return nil, ErrDivisionByZero
	}
	return runtime.FloatValue{Val: lf / rf}, nil
}

func evaluateIntegerArithmetic(op string, left runtime.IntegerValue, right runtime.IntegerValue) (runtime.Value, error) {
	result := new(big.Int)
	switch op {
	case "+":
		result.Add(left.Val, right.Val)
	case "-":
		result.Sub(left.Val, right.Val)
	case "*":
		result.Mul(left.Val, right.Val)
	default:
		return nil, unsupportedOperands(op, left, right)
	}
	return runtime.IntegerValue{Val: result}, nil
}

func evaluateFloatArithmetic(op string, left float64, right float64) (runtime.Value, error) {
	switch op {
	case "+":
		return runtime.FloatValue{Val: left + right}, nil
	case "-":
		return runtime.FloatValue{Val: left - right}, nil
	case "*":
		return runtime.FloatValue{Val: left * right}, nil
	default:
		return nil, fmt.Errorf("%w: operator %s", ErrUnsupportedOperands, op)
	}
}

// evaluateStringArithmetic covers the two string forms: concatenation of two
// strings and repetition of a string by an integer.
func evaluateStringArithmetic(op string, left runtime.Value, right runtime.Value) (runtime.Value, error) {
	ls, lStr := left.(runtime.StringValue)
	rs, rStr := right.(runtime.StringValue)
	switch {
	case op == "+" && lStr && rStr:
		return runtime.StringValue{Val: ls.Val + rs.Val}, nil
	case op == "*" && lStr:
		if count, ok := right.(runtime.IntegerValue); ok {
			return repeatString(ls.Val, count)
		}
	case op == "*" && rStr:
		if count, ok := left.(runtime.IntegerValue); ok {
			return repeatString(rs.Val, count)
		}
	}
	return nil, unsupportedOperands(op, left, right)
}

func repeatString(s string, count runtime.IntegerValue) (runtime.Value, error) {
	if count.Val.Sign() <= 0 || s == "" {
		return runtime.StringValue{Val: ""}, nil
	}
	if !count.Val.IsInt64() || count.Val.Int64() > maxRepeatBytes/int64(len(s)) {
		return nil, fmt.Errorf("%w: repetition of %d bytes by %s is too large", ErrUnsupportedOperands, len(s), count.Val)
	}
	return runtime.StringValue{Val: strings.Repeat(s, int(count.Val.Int64()))}, nil
}

func unsupportedOperands(op string, left runtime.Value, right runtime.Value) error {
	return fmt.Errorf("%w: %s %s %s", ErrUnsupportedOperands, left.Kind(), op, right.Kind())
}
