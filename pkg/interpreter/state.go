package interpreter

import (
	"sort"

	"github.com/giovannicarlino04/Pipeline/pkg/runtime"
)

// Function is a one-line function definition.
type Function struct {
	Name       string
	Parameters []string
	// Body is the full source line that defined the function.
	Body string
}

// VariableTable maps variable names to values.
type VariableTable struct {
	values map[string]runtime.Value
}

func NewVariableTable() *VariableTable {
	return &VariableTable{values: make(map[string]runtime.Value)}
}

func (t *VariableTable) Get(name string) (runtime.Value, bool) {
	v, ok := t.values[name]
	return v, ok
}

func (t *VariableTable) Set(name string, value runtime.Value) {
	t.values[name] = value
}

func (t *VariableTable) Len() int { return len(t.values) }

// Names returns the variable names in sorted order.
func (t *VariableTable) Names() []string {
	return sortedKeys(t.values)
}

// FunctionTable maps function names to their definitions.
type FunctionTable struct {
	funcs map[string]Function
}

func NewFunctionTable() *FunctionTable {
	return &FunctionTable{funcs: make(map[string]Function)}
}

func (t *FunctionTable) Define(fn Function) {
	t.funcs[fn.Name] = fn
}

func (t *FunctionTable) Lookup(name string) (Function, bool) {
	fn, ok := t.funcs[name]
	return fn, ok
}

func (t *FunctionTable) Len() int { return len(t.funcs) }

// Names returns the function names in sorted order.
func (t *FunctionTable) Names() []string {
	return sortedKeys(t.funcs)
}

// State is everything a running script can observe or mutate. Variables and
// functions live in separate tables, so one name may exist in both.
type State struct {
	Variables *VariableTable
	Functions *FunctionTable
}

func NewState() *State {
	return &State{
		Variables: NewVariableTable(),
		Functions: NewFunctionTable(),
	}
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
