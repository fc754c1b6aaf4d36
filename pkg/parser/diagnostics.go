package parser

import (
	"errors"
	"fmt"
)

// ErrUnbalancedParentheses marks a ')' that closes nothing.
var ErrUnbalancedParentheses = errors.New("unbalanced parentheses")

// SourceLocation captures where in an expression a problem was found.
// Column counts tokens, starting at 1.
type SourceLocation struct {
	Line   int
	Column int
}

// ParseError includes a message plus a best-effort source location.
type ParseError struct {
	Message  string
	Location SourceLocation
	Err      error
}

func (e *ParseError) Error() string {
	if e.Location.Column > 0 {
		return fmt.Sprintf("%s (token %d)", e.Message, e.Location.Column)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
