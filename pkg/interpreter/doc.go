// Package interpreter executes Pipeline scripts one source line at a time.
// Each line is classified by the parser into a single statement form and
// dispatched against an explicit State holding the variable and function
// tables. Arithmetic is evaluated by a shunting-yard engine over
// whitespace-separated tokens.
package interpreter
