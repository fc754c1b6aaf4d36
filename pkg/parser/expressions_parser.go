package parser

import (
	"strings"

	"github.com/giovannicarlino04/Pipeline/pkg/ast"
)

var precedence = map[string]int{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
}

// IsOperator reports whether text is one of the arithmetic operators.
func IsOperator(text string) bool {
	_, ok := precedence[text]
	return ok
}

// Precedence returns the binding strength of an operator, 0 for anything else.
func Precedence(op string) int {
	return precedence[op]
}

// Tokenize splits an expression strictly on whitespace. Operators and
// parentheses are only recognised as standalone tokens.
func Tokenize(expr string) []ast.Token {
	fields := strings.Fields(expr)
	tokens := make([]ast.Token, 0, len(fields))
	for _, field := range fields {
		tokens = append(tokens, ast.Token{Kind: tokenKind(field), Text: field})
	}
	return tokens
}

func tokenKind(text string) ast.TokenKind {
	switch {
	case IsOperator(text):
		return ast.TokenOperator
	case text == "(":
		return ast.TokenLeftParen
	case text == ")":
		return ast.TokenRightParen
	default:
		return ast.TokenOperand
	}
}

// ToPostfix reorders infix tokens with the shunting-yard algorithm. An
// incoming operator flushes every stacked operator of greater or equal
// precedence; an unmatched '(' left on the stack is emitted like any other
// remaining entry.
func ToPostfix(tokens []ast.Token) ([]ast.Token, error) {
	output := make([]ast.Token, 0, len(tokens))
	var stack []ast.Token

	for idx, tok := range tokens {
		switch tok.Kind {
		case ast.TokenOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != ast.TokenOperator || Precedence(top.Text) < Precedence(tok.Text) {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case ast.TokenLeftParen:
			stack = append(stack, tok)
		case ast.TokenRightParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == ast.TokenLeftParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, &ParseError{
					Message:  "unbalanced parentheses: ')' without matching '('",
					Location: SourceLocation{Column: idx + 1},
					Err:      ErrUnbalancedParentheses,
				}
			}
		default:
			output = append(output, tok)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == ast.TokenLeftParen {
			// Leftover '(' is carried as opaque text.
			top.Kind = ast.TokenOperand
		}
		output = append(output, top)
	}
	return output, nil
}

// ParseExpression tokenizes expr and returns its postfix order.
func ParseExpression(expr string) ([]ast.Token, error) {
	return ToPostfix(Tokenize(expr))
}
