package interpreter

import (
	"fmt"
	"strings"

	"fortio.org/log"
	"github.com/davecgh/go-spew/spew"

	"github.com/giovannicarlino04/Pipeline/pkg/ast"
	"github.com/giovannicarlino04/Pipeline/pkg/parser"
	"github.com/giovannicarlino04/Pipeline/pkg/runtime"
)

// Evaluate computes the value of a whitespace-tokenized arithmetic
// expression against the variables in state. Operands that are neither
// numbers nor known variables are kept as their literal text. When operands
// are left over without an operator to combine them, the result is their
// concatenated text.
func Evaluate(state *State, expr string) (runtime.Value, error) {
	postfix, err := parser.ParseExpression(expr)
	if err != nil {
		return nil, &EvalError{Expression: expr, Err: err}
	}
	if log.LogVerbose() {
		log.LogVf("postfix %q -> %q\n%s", expr, ast.JoinTokens(postfix), spew.Sdump(postfix))
	}
	value, err := evaluatePostfix(state, postfix)
	if err != nil {
		return nil, &EvalError{Expression: expr, Err: err}
	}
	return value, nil
}

func evaluatePostfix(state *State, postfix []ast.Token) (runtime.Value, error) {
	stack := make([]runtime.Value, 0, len(postfix))
	for _, tok := range postfix {
		if tok.Kind != ast.TokenOperator {
			stack = append(stack, resolveOperand(state, tok.Text))
			continue
		}
		if len(stack) < 2 {
			return nil, fmt.Errorf("%w for '%s'", ErrInsufficientOperands, tok.Text)
		}
		right := stack[len(stack)-1]
		left := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		result, err := applyBinaryOperator(tok.Text, left, right)
		if err != nil {
			return nil, err
		}
		stack = append(stack, result)
	}

	switch len(stack) {
	case 0:
		return nil, ErrEmptyExpression
	case 1:
		return stack[0], nil
	default:
		var b strings.Builder
		for _, v := range stack {
			b.WriteString(runtime.Format(v))
		}
		return runtime.StringValue{Val: b.String()}, nil
	}
}

// resolveOperand turns an operand token into a value: numeric literal first,
// then a variable lookup, then the token text itself.
func resolveOperand(state *State, text string) runtime.Value {
	if v, ok := runtime.ParseNumber(text); ok {
		return v
	}
	if state != nil {
		if stored, ok := state.Variables.Get(text); ok {
			return runtime.Reinterpret(stored)
		}
	}
	return runtime.StringValue{Val: text}
}
