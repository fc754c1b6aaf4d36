package interpreter

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientOperands is returned when an operator finds fewer than
	// two operands. The expression has no result.
	ErrInsufficientOperands = errors.New("not enough operands")
	// ErrEmptyExpression is returned when nothing is left to yield.
	ErrEmptyExpression     = errors.New("empty expression")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrUnsupportedOperands = errors.New("unsupported operands")
	// ErrCallDepthExceeded stops a run whose invocations nest too deeply.
	ErrCallDepthExceeded = errors.New("maximum call depth exceeded")
)

// EvalError reports an expression that produced no value.
type EvalError struct {
	Expression string
	Err        error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("cannot evaluate %q: %v", e.Expression, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
