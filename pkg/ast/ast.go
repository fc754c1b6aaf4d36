package ast

import "strings"

type StatementType string

const (
	StatementBlank               StatementType = "Blank"
	StatementMissingSemicolon    StatementType = "MissingSemicolon"
	StatementVariableDeclaration StatementType = "VariableDeclaration"
	StatementConsole             StatementType = "Console"
	StatementAssignment          StatementType = "Assignment"
	StatementFunctionDefinition  StatementType = "FunctionDefinition"
	StatementFunctionCall        StatementType = "FunctionCall"
	StatementInvalid             StatementType = "Invalid"
)

// Statement is one classified source line.
type Statement interface {
	StatementType() StatementType
	Span() Span
	Source() string
	isStatement()
}

type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// LineSpan covers a whole source line.
func LineSpan(line int, text string) Span {
	return Span{
		Start: Position{Line: line, Column: 1},
		End:   Position{Line: line, Column: len(text) + 1},
	}
}

type statementImpl struct {
	Type StatementType `json:"type"`
	Text string        `json:"source"`
	span Span
}

func newStatementImpl(t StatementType, text string, span Span) statementImpl {
	return statementImpl{Type: t, Text: text, span: span}
}

func (s statementImpl) StatementType() StatementType { return s.Type }
func (s statementImpl) Span() Span                   { return s.span }
func (s statementImpl) Source() string               { return s.Text }
func (statementImpl) isStatement()                   {}

func (s *statementImpl) setSpan(span Span) { s.span = span }

// SetSpan annotates the statement with the provided span.
func SetSpan(stmt Statement, span Span) {
	if stmt == nil {
		return
	}
	if setter, ok := stmt.(interface{ setSpan(Span) }); ok {
		setter.setSpan(span)
	}
}

//-----------------------------------------------------------------------------
// Statement variants
//-----------------------------------------------------------------------------

type BlankStatement struct {
	statementImpl
}

func NewBlankStatement(text string) *BlankStatement {
	return &BlankStatement{statementImpl: newStatementImpl(StatementBlank, text, Span{})}
}

type MissingSemicolonStatement struct {
	statementImpl
}

func NewMissingSemicolonStatement(text string) *MissingSemicolonStatement {
	return &MissingSemicolonStatement{statementImpl: newStatementImpl(StatementMissingSemicolon, text, Span{})}
}

// LiteralKind classifies the value clause of a declaration.
type LiteralKind string

const (
	LiteralString       LiteralKind = "string"
	LiteralDigits       LiteralKind = "digits"
	LiteralUnrecognized LiteralKind = "unrecognized"
)

type VariableDeclaration struct {
	statementImpl
	Name        string      `json:"name"`
	LiteralKind LiteralKind `json:"literalKind"`
	// Value is the stored text: unquoted for strings, the digit run for
	// numbers, the raw clause when unrecognized.
	Value string `json:"value"`
}

func NewVariableDeclaration(text, name string, kind LiteralKind, value string) *VariableDeclaration {
	return &VariableDeclaration{
		statementImpl: newStatementImpl(StatementVariableDeclaration, text, Span{}),
		Name:          name,
		LiteralKind:   kind,
		Value:         value,
	}
}

type ConsoleStatement struct {
	statementImpl
	// Quoted console arguments print Text verbatim; otherwise Expression is
	// evaluated.
	Quoted     bool   `json:"quoted"`
	Text       string `json:"text,omitempty"`
	Expression string `json:"expression,omitempty"`
}

func NewConsoleText(text, literal string) *ConsoleStatement {
	return &ConsoleStatement{
		statementImpl: newStatementImpl(StatementConsole, text, Span{}),
		Quoted:        true,
		Text:          literal,
	}
}

func NewConsoleExpression(text, expr string) *ConsoleStatement {
	return &ConsoleStatement{
		statementImpl: newStatementImpl(StatementConsole, text, Span{}),
		Expression:    expr,
	}
}

type Assignment struct {
	statementImpl
	Name       string `json:"name"`
	Quoted     bool   `json:"quoted"`
	Text       string `json:"text,omitempty"`
	Expression string `json:"expression,omitempty"`
}

func NewAssignment(text, name, expr string) *Assignment {
	return &Assignment{
		statementImpl: newStatementImpl(StatementAssignment, text, Span{}),
		Name:          name,
		Expression:    expr,
	}
}

func NewStringAssignment(text, name, literal string) *Assignment {
	return &Assignment{
		statementImpl: newStatementImpl(StatementAssignment, text, Span{}),
		Name:          name,
		Quoted:        true,
		Text:          literal,
	}
}

type FunctionDefinition struct {
	statementImpl
	Name       string   `json:"name"`
	Parameters []string `json:"parameters"`
}

// Body is the raw line re-executed on invocation.
func (f *FunctionDefinition) Body() string { return f.Text }

func NewFunctionDefinition(text, name string, params []string) *FunctionDefinition {
	return &FunctionDefinition{
		statementImpl: newStatementImpl(StatementFunctionDefinition, text, Span{}),
		Name:          name,
		Parameters:    params,
	}
}

type FunctionCall struct {
	statementImpl
	Name      string   `json:"name"`
	Arguments []string `json:"arguments"`
}

func NewFunctionCall(text, name string, args []string) *FunctionCall {
	return &FunctionCall{
		statementImpl: newStatementImpl(StatementFunctionCall, text, Span{}),
		Name:          name,
		Arguments:     args,
	}
}

// InvalidKind separates malformed console calls from other invalid lines.
type InvalidKind string

const (
	InvalidGeneral    InvalidKind = "general"
	InvalidConsole    InvalidKind = "console"
	InvalidDefinition InvalidKind = "definition"
)

type InvalidStatement struct {
	statementImpl
	Kind InvalidKind `json:"kind"`
}

func NewInvalidStatement(text string, kind InvalidKind) *InvalidStatement {
	return &InvalidStatement{
		statementImpl: newStatementImpl(StatementInvalid, text, Span{}),
		Kind:          kind,
	}
}

//-----------------------------------------------------------------------------
// Expression tokens
//-----------------------------------------------------------------------------

type TokenKind int

const (
	TokenOperand TokenKind = iota
	TokenOperator
	TokenLeftParen
	TokenRightParen
)

func (k TokenKind) String() string {
	switch k {
	case TokenOperator:
		return "operator"
	case TokenLeftParen:
		return "lparen"
	case TokenRightParen:
		return "rparen"
	default:
		return "operand"
	}
}

// Token is one whitespace-delimited piece of an expression.
type Token struct {
	Kind TokenKind `json:"kind"`
	Text string    `json:"text"`
}

func (t Token) String() string { return t.Text }

// JoinTokens renders a token sequence separated by single spaces.
func JoinTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.Text
	}
	return strings.Join(parts, " ")
}
