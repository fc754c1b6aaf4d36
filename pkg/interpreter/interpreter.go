package interpreter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"
	"github.com/davecgh/go-spew/spew"

	"github.com/giovannicarlino04/Pipeline/pkg/ast"
	"github.com/giovannicarlino04/Pipeline/pkg/parser"
	"github.com/giovannicarlino04/Pipeline/pkg/runtime"
)

// DefaultMaxCallDepth bounds nested function invocations.
const DefaultMaxCallDepth = 10000

// Interpreter dispatches classified source lines against a State. Program
// output and diagnostics share one writer.
type Interpreter struct {
	state        *State
	out          io.Writer
	maxCallDepth int
	depth        int
	diagnostics  []Diagnostic
}

// New returns an interpreter with empty tables writing to stdout.
func New() *Interpreter {
	return NewWithState(NewState())
}

// NewWithState returns an interpreter operating on an existing State.
func NewWithState(state *State) *Interpreter {
	if state == nil {
		state = NewState()
	}
	return &Interpreter{
		state:        state,
		out:          os.Stdout,
		maxCallDepth: DefaultMaxCallDepth,
	}
}

func (i *Interpreter) State() *State { return i.state }

// SetOutput redirects program output and diagnostics.
func (i *Interpreter) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	i.out = w
}

// SetMaxCallDepth sets the invocation nesting limit; n <= 0 restores the default.
func (i *Interpreter) SetMaxCallDepth(n int) {
	if n <= 0 {
		n = DefaultMaxCallDepth
	}
	i.maxCallDepth = n
}

// Diagnostics returns every diagnostic reported so far.
func (i *Interpreter) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), i.diagnostics...)
}

// Run executes lines in order. Line-level problems are reported and skipped;
// only a fatal error stops the run.
func (i *Interpreter) Run(lines []string) error {
	for _, stmt := range parser.ParseLines(lines) {
		if err := i.ExecuteStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs a single line with no line number attached.
func (i *Interpreter) Execute(line string) error {
	return i.ExecuteLine(line, 0)
}

// ExecuteLine classifies and runs one source line.
func (i *Interpreter) ExecuteLine(line string, lineNo int) error {
	return i.ExecuteStatement(parser.ParseLine(line, lineNo))
}

// ExecuteStatement runs an already classified statement.
func (i *Interpreter) ExecuteStatement(stmt ast.Statement) error {
	log.LogVf("line %d: %s %q", stmt.Span().Start.Line, stmt.StatementType(), stmt.Source())
	if log.LogDebug() {
		log.Debugf("%s", spew.Sdump(stmt))
	}

	switch s := stmt.(type) {
	case *ast.BlankStatement:
		return nil
	case *ast.MissingSemicolonStatement:
		i.report(stmt, DiagnosticMissingSemicolon, missingSemicolonMessage(s.Source()))
	case *ast.VariableDeclaration:
		i.declare(s)
	case *ast.ConsoleStatement:
		i.console(s)
	case *ast.Assignment:
		i.assign(s)
	case *ast.FunctionDefinition:
		i.state.Functions.Define(Function{
			Name:       s.Name,
			Parameters: append([]string(nil), s.Parameters...),
			Body:       s.Body(),
		})
	case *ast.FunctionCall:
		return i.invoke(s)
	case *ast.InvalidStatement:
		kind := DiagnosticInvalidStatement
		if s.Kind == ast.InvalidConsole {
			kind = DiagnosticInvalidConsoleForm
		}
		i.report(stmt, kind, invalidStatementMessage(s.Source()))
	default:
		return fmt.Errorf("interpreter: unsupported statement %T", stmt)
	}
	return nil
}

// Evaluate evaluates expr against this interpreter's variables.
func (i *Interpreter) Evaluate(expr string) (runtime.Value, error) {
	return Evaluate(i.state, expr)
}

// EvaluateCondition evaluates a comparison against this interpreter's variables.
func (i *Interpreter) EvaluateCondition(text string) bool {
	return EvaluateCondition(i.state, text)
}

func (i *Interpreter) declare(decl *ast.VariableDeclaration) {
	switch decl.LiteralKind {
	case ast.LiteralString, ast.LiteralDigits:
		// Digit runs are kept as text; lookups reinterpret them.
		i.state.Variables.Set(decl.Name, runtime.StringValue{Val: decl.Value})
	default:
		i.report(decl, DiagnosticUnrecognizedValueType, unrecognizedValueMessage())
	}
}

func (i *Interpreter) console(stmt *ast.ConsoleStatement) {
	if stmt.Quoted {
		i.println(stmt.Text)
		return
	}
	value, err := Evaluate(i.state, stmt.Expression)
	if err != nil {
		i.report(stmt, DiagnosticEvaluationFailed, evaluationFailedMessage(err))
		return
	}
	i.println(runtime.Format(value))
}

func (i *Interpreter) assign(stmt *ast.Assignment) {
	if stmt.Quoted {
		i.state.Variables.Set(stmt.Name, runtime.StringValue{Val: stmt.Text})
		return
	}
	value, err := Evaluate(i.state, stmt.Expression)
	if err != nil {
		i.report(stmt, DiagnosticEvaluationFailed, evaluationFailedMessage(err))
		return
	}
	i.state.Variables.Set(stmt.Name, value)
}

// invoke evaluates the arguments against the parameter names, then re-runs
// the stored definition line with the function name removed. The argument
// values are not visible to that line; it sees the same global variables as
// the caller.
func (i *Interpreter) invoke(call *ast.FunctionCall) error {
	fn, ok := i.state.Functions.Lookup(call.Name)
	if !ok {
		i.report(call, DiagnosticUndefinedFunction, undefinedFunctionMessage(call.Name))
		return nil
	}
	bindings := i.bindArguments(fn, call.Arguments)
	log.LogVf("call %s: %d argument(s) evaluated, not bound", fn.Name, len(bindings))

	if i.depth >= i.maxCallDepth {
		return fmt.Errorf("%w: %d nested calls at %s", ErrCallDepthExceeded, i.maxCallDepth, fn.Name)
	}
	i.depth++
	defer func() { i.depth-- }()

	body := strings.ReplaceAll(fn.Body, call.Name, "")
	return i.ExecuteLine(body, call.Span().Start.Line)
}

func (i *Interpreter) bindArguments(fn Function, args []string) map[string]runtime.Value {
	n := len(fn.Parameters)
	if len(args) < n {
		n = len(args)
	}
	bindings := make(map[string]runtime.Value, n)
	for idx := 0; idx < n; idx++ {
		param := strings.TrimSpace(fn.Parameters[idx])
		value, err := Evaluate(i.state, strings.TrimSpace(args[idx]))
		if err != nil {
			log.Warnf("call %s: argument %s: %v", fn.Name, param, err)
			continue
		}
		bindings[param] = value
	}
	return bindings
}

func (i *Interpreter) report(stmt ast.Statement, kind DiagnosticKind, message string) {
	diag := Diagnostic{Kind: kind, Message: message, Span: stmt.Span()}
	i.diagnostics = append(i.diagnostics, diag)
	log.LogVf("%s", DescribeDiagnostic(diag))
	i.println(message)
}

func (i *Interpreter) println(text string) {
	fmt.Fprintln(i.out, text)
}
