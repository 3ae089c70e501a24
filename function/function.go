/*
File    : loxy/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function holds the runtime representation of a user-defined
// function: its declaration and the environment it closed over. Invoking
// one is the interpreter's job (interp.Interpreter.callFunction), which
// needs to manage the call-site environment and unwind the non-local
// return signal — this package only carries the data a call needs.
package function

import (
	"fmt"

	"github.com/akashmaji946/loxy/environment"
	"github.com/akashmaji946/loxy/parser"
)

// Function is a user-defined function object, capturing the environment
// active at its declaration site so that its body can see variables from
// enclosing scopes even after those scopes have otherwise finished
// executing. Closure is a pointer, never a copy, so mutations made
// through any other alias of the same chain stay visible.
type Function struct {
	Declaration *parser.FunctionStmt
	Closure     *environment.Environment
}

// New creates a Function bound to the environment active at its point of
// declaration.
func New(decl *parser.FunctionStmt, closure *environment.Environment) *Function {
	return &Function{Declaration: decl, Closure: closure}
}

// Arity reports the number of parameters the function declares.
// Implements value.Callable.
func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Name returns the function's declared name. Implements value.Callable.
func (f *Function) Name() string {
	return f.Declaration.Name.Lexeme
}

// IsNative reports false: Function is always a user-defined Lox function.
// Implements value.Callable.
func (f *Function) IsNative() bool {
	return false
}

// String renders the function for debugging, mirroring the "<fn NAME>"
// form used when a function value is printed or stringified.
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Name())
}
