package interpreter

import (
	"math"
	"math/big"
	"strings"

	"fortio.org/log"

	"github.com/giovannicarlino04/Pipeline/pkg/runtime"
)

// Two-character operators come first so "<=" is not read as "<".
var comparisonOperators = []string{"==", "!=", ">=", "<=", ">", "<"}

// EvaluateCondition evaluates a binary comparison such as "a + 1 <= 4". The
// first operator found splits the text; both sides are evaluated as
// expressions. Text without a comparison operator is false, as is a side
// that fails to evaluate.
func EvaluateCondition(state *State, text string) bool {
	for _, op := range comparisonOperators {
		left, right, found := strings.Cut(text, op)
		if !found {
			continue
		}
		lv, err := Evaluate(state, strings.TrimSpace(left))
		if err != nil {
			log.Warnf("condition %q: left side: %v", text, err)
			return false
		}
		rv, err := Evaluate(state, strings.TrimSpace(right))
		if err != nil {
			log.Warnf("condition %q: right side: %v", text, err)
			return false
		}
		return compareValues(op, lv, rv)
	}
	return false
}

func compareValues(op string, left runtime.Value, right runtime.Value) bool {
	cmp, ok := orderValues(left, right)
	if !ok {
		// Unordered pairs (string vs number, NaN) are only ever unequal.
		return op == "!="
	}
	switch op {
	case "==":
		return cmp == 0
	case "!=":
		return cmp != 0
	case ">":
		return cmp > 0
	case "<":
		return cmp < 0
	case ">=":
		return cmp >= 0
	case "<=":
		return cmp <= 0
	default:
		return false
	}
}

func orderValues(left runtime.Value, right runtime.Value) (int, bool) {
	switch lv := left.(type) {
	case runtime.StringValue:
		rv, ok := right.(runtime.StringValue)
		if !ok {
			return 0, false
		}
		return strings.Compare(lv.Val, rv.Val), true
	case runtime.IntegerValue:
		switch rv := right.(type) {
		case runtime.IntegerValue:
			return lv.Val.Cmp(rv.Val), true
		case runtime.FloatValue:
			cmp, ok := compareIntegerFloat(lv.Val, rv.Val)
			return cmp, ok
		}
	case runtime.FloatValue:
		switch rv := right.(type) {
		case runtime.FloatValue:
			return compareFloats(lv.Val, rv.Val)
		case runtime.IntegerValue:
			cmp, ok := compareIntegerFloat(rv.Val, lv.Val)
			return -cmp, ok
		}
	}
	return 0, false
}

func compareFloats(a float64, b float64) (int, bool) {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return 0, false
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	default:
		return 0, true
	}
}

// compareIntegerFloat compares exactly, without rounding the integer.
func compareIntegerFloat(i *big.Int, f float64) (int, bool) {
	if math.IsNaN(f) {
		return 0, false
	}
	return new(big.Float).SetInt(i).Cmp(big.NewFloat(f)), true
}
