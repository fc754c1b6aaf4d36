package runtime

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

// IntegerValue is unbounded; arithmetic never overflows.
type IntegerValue struct {
	Val *big.Int
}

func (v IntegerValue) Kind() Kind { return KindInteger }

type FloatValue struct {
	Val float64
}

func (v FloatValue) Kind() Kind { return KindFloat }

// NewInteger wraps an int64 as an IntegerValue.
func NewInteger(n int64) IntegerValue {
	return IntegerValue{Val: big.NewInt(n)}
}

//-----------------------------------------------------------------------------
// Literal heuristics
//-----------------------------------------------------------------------------

// ParseNumber applies the dot heuristic: text containing '.' must parse as a
// float, anything else must parse as a base-10 integer.
func ParseNumber(text string) (Value, bool) {
	if strings.Contains(text, ".") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, false
		}
		return FloatValue{Val: f}, true
	}
	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, false
	}
	return IntegerValue{Val: n}, true
}

// Reinterpret resolves a stored value for use as an operand. Strings that
// look numeric under the dot heuristic become numbers; everything else is
// returned unchanged.
func Reinterpret(v Value) Value {
	s, ok := v.(StringValue)
	if !ok {
		return v
	}
	if num, ok := ParseNumber(s.Val); ok {
		return num
	}
	return s
}

// IsDigits reports whether text is a non-empty run of ASCII digits.
func IsDigits(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

//-----------------------------------------------------------------------------
// Text form
//-----------------------------------------------------------------------------

// Format returns the canonical text of a value as printed by console.
func Format(v Value) string {
	switch val := v.(type) {
	case StringValue:
		return val.Val
	case IntegerValue:
		if val.Val == nil {
			return "0"
		}
		return val.Val.String()
	case FloatValue:
		return FormatFloat(val.Val)
	case nil:
		return ""
	default:
		return fmt.Sprintf("[%s]", v.Kind())
	}
}

// FormatFloat renders floats the way the language always has: shortest
// round-trip digits, a trailing ".0" for integral values, and exponent form
// outside [1e-4, 1e16).
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ToFloat converts a numeric value to float64.
func ToFloat(v Value) (float64, bool) {
	switch val := v.(type) {
	case IntegerValue:
		f, _ := new(big.Float).SetInt(val.Val).Float64()
		return f, true
	case FloatValue:
		return val.Val, true
	default:
		return 0, false
	}
}

// IsNumeric reports whether v is an integer or a float.
func IsNumeric(v Value) bool {
	switch v.(type) {
	case IntegerValue, FloatValue:
		return true
	default:
		return false
	}
}
