package interpreter

import (
	"fmt"

	"github.com/giovannicarlino04/Pipeline/pkg/ast"
)

type DiagnosticKind string

const (
	DiagnosticMissingSemicolon      DiagnosticKind = "MissingSemicolon"
	DiagnosticUnrecognizedValueType DiagnosticKind = "UnrecognizedValueType"
	DiagnosticInvalidConsoleForm    DiagnosticKind = "InvalidConsoleForm"
	DiagnosticInvalidStatement      DiagnosticKind = "InvalidStatement"
	DiagnosticUndefinedFunction     DiagnosticKind = "UndefinedFunction"
	DiagnosticEvaluationFailed      DiagnosticKind = "EvaluationFailed"
)

// Diagnostic is a non-fatal, line-level problem. Message is exactly what was
// printed on the output stream.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Span    ast.Span
}

// DescribeDiagnostic renders a diagnostic with its line number for logs.
func DescribeDiagnostic(diag Diagnostic) string {
	if line := diag.Span.Start.Line; line > 0 {
		return fmt.Sprintf("line %d: %s: %s", line, diag.Kind, diag.Message)
	}
	return fmt.Sprintf("%s: %s", diag.Kind, diag.Message)
}

func missingSemicolonMessage(line string) string {
	return fmt.Sprintf("Error: Missing semicolon at the end of line: %s", line)
}

func unrecognizedValueMessage() string {
	return "Error: unrecognized value type"
}

func invalidStatementMessage(line string) string {
	return fmt.Sprintf("Invalid statement: %s", line)
}

func undefinedFunctionMessage(name string) string {
	return fmt.Sprintf("Function %s not defined.", name)
}

func evaluationFailedMessage(err error) string {
	return fmt.Sprintf("Error: %v", err)
}
