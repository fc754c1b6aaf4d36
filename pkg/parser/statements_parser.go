package parser

import (
	"strings"

	"github.com/giovannicarlino04/Pipeline/pkg/ast"
	"github.com/giovannicarlino04/Pipeline/pkg/runtime"
)

const (
	keywordVar     = "var"
	keywordConsole = "console"
	keywordDef     = "def"
)

// definitionPrefix is skipped by length, not searched for, so "undefined(1);"
// defines "fined".
const definitionPrefix = keywordDef + " "

// ParseLine classifies one source line. The rules are tried in a fixed order
// and the first match wins, so e.g. any line containing "def" that is not a
// declaration, console call or assignment is a function definition.
func ParseLine(raw string, lineNo int) ast.Statement {
	line := strings.TrimSpace(raw)
	stmt := classifyLine(line)
	ast.SetSpan(stmt, ast.LineSpan(lineNo, line))
	return stmt
}

// ParseLines classifies a whole source, numbering lines from 1.
func ParseLines(lines []string) []ast.Statement {
	stmts := make([]ast.Statement, 0, len(lines))
	for idx, line := range lines {
		stmts = append(stmts, ParseLine(line, idx+1))
	}
	return stmts
}

func classifyLine(line string) ast.Statement {
	if line == "" {
		return ast.NewBlankStatement(line)
	}
	if !strings.HasSuffix(line, ";") {
		return ast.NewMissingSemicolonStatement(line)
	}
	switch {
	case strings.HasPrefix(line, keywordVar):
		return parseDeclaration(line)
	case strings.HasPrefix(line, keywordConsole):
		return parseConsole(line)
	case strings.Contains(line, "=") && !strings.HasPrefix(line, "=="):
		return parseAssignment(line)
	case strings.Contains(line, keywordDef):
		return parseDefinition(line)
	}
	if call, ok := parseCall(line); ok {
		return call
	}
	return ast.NewInvalidStatement(line, ast.InvalidGeneral)
}

func parseDeclaration(line string) ast.Statement {
	left, value, _ := strings.Cut(line, "=")
	name := strings.TrimSpace(strings.TrimPrefix(left, keywordVar))
	value = strings.TrimSpace(value)

	switch {
	case strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `";`):
		literal := ""
		if len(value) > 2 {
			literal = value[1 : len(value)-2]
		}
		return ast.NewVariableDeclaration(line, name, ast.LiteralString, literal)
	case strings.HasSuffix(value, ";") && runtime.IsDigits(value[:len(value)-1]):
		return ast.NewVariableDeclaration(line, name, ast.LiteralDigits, value[:len(value)-1])
	default:
		return ast.NewVariableDeclaration(line, name, ast.LiteralUnrecognized, value)
	}
}

func parseConsole(line string) ast.Statement {
	rest := strings.TrimSpace(line[len(keywordConsole):])
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ");") {
		return ast.NewInvalidStatement(line, ast.InvalidConsole)
	}
	inner := strings.TrimSpace(rest[1 : len(rest)-2])
	if inner == `"` {
		// A lone quote opens and closes at once.
		return ast.NewConsoleText(line, "")
	}
	if literal, ok := unquote(inner); ok {
		return ast.NewConsoleText(line, literal)
	}
	return ast.NewConsoleExpression(line, inner)
}

func parseAssignment(line string) ast.Statement {
	left, right, _ := strings.Cut(line, "=")
	name := strings.TrimSpace(left)
	expr := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(right), ";"))
	if literal, ok := unquote(expr); ok {
		return ast.NewStringAssignment(line, name, literal)
	}
	return ast.NewAssignment(line, name, expr)
}

func parseDefinition(line string) ast.Statement {
	after := ""
	if len(line) > len(definitionPrefix) {
		after = line[len(definitionPrefix):]
	}
	head, params, ok := strings.Cut(after, "(")
	if !ok {
		return ast.NewInvalidStatement(line, ast.InvalidDefinition)
	}
	params = strings.TrimRight(params, "):; ")
	return ast.NewFunctionDefinition(line, strings.TrimSpace(head), strings.Split(params, ","))
}

func parseCall(line string) (ast.Statement, bool) {
	body := strings.TrimSpace(strings.TrimSuffix(line, ";"))
	if !strings.Contains(body, "(") || !strings.HasSuffix(body, ")") {
		return nil, false
	}
	head, args, _ := strings.Cut(body, "(")
	args = strings.TrimRight(args, ")")
	return ast.NewFunctionCall(line, strings.TrimSpace(head), strings.Split(args, ",")), true
}

func unquote(text string) (string, bool) {
	if len(text) < 2 || !strings.HasPrefix(text, `"`) || !strings.HasSuffix(text, `"`) {
		return "", false
	}
	return text[1 : len(text)-1], true
}
