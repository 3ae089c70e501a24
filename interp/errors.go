/*
File    : loxy/interp/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"

	"github.com/akashmaji946/loxy/lexer"
	"github.com/akashmaji946/loxy/value"
)

// RuntimeError is a Lox-level runtime failure tied to the token that
// triggered it, so the reporter can print a line number. It is the only
// error type that interpret() expects to escape statement execution —
// anything else indicates a bug in the interpreter itself.
type RuntimeError struct {
	Token lexer.Token
	Msg   string
}

func (e *RuntimeError) Error() string { return e.Msg }

func runtimeErrorf(tok lexer.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Msg: fmt.Sprintf(format, args...)}
}

// returnSignal is how a `return` statement unwinds out of however many
// nested statements and blocks sit between it and the call site. It is
// carried as an ordinary Go error return rather than via panic/recover,
// since it is control flow the interpreter always expects to handle (vs.
// panic/recover in the parser, reserved for truly exceptional
// resynchronization).
type returnSignal struct {
	Value value.Value
}

func (r *returnSignal) Error() string { return "return" }
