/*
File    : loxy/interp/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interp implements the tree-walking evaluator: it executes the
// statement/expression AST produced by the parser, consulting the
// resolver's side-table for variable lookups and reporting runtime
// failures through a Reporter rather than letting them escape.
package interp

import (
	"fmt"
	"io"

	"github.com/akashmaji946/loxy/environment"
	"github.com/akashmaji946/loxy/function"
	"github.com/akashmaji946/loxy/natives"
	"github.com/akashmaji946/loxy/parser"
	"github.com/akashmaji946/loxy/value"
)

// reporter is the minimal interface the Interpreter needs from a
// report.Reporter.
type reporter interface {
	ReportRuntime(line int, msg string)
}

// nativeCallable is satisfied by every built-in in the natives package: a
// callable that needs no interpreter state to run.
type nativeCallable interface {
	value.Callable
	Call(args []value.Value) (value.Value, error)
}

// Interpreter walks a resolved AST and executes it against a chain of
// Environments rooted at the globals environment.
type Interpreter struct {
	Writer  io.Writer
	reporter reporter
	globals *environment.Environment
	current *environment.Environment
	locals  map[parser.Expr]int
}

// New creates an Interpreter that writes `print` output to w and reports
// runtime failures to r. The globals environment is seeded with every
// native in the natives package.
func New(w io.Writer, r reporter) *Interpreter {
	globals := environment.New()
	globals.Define(natives.Clock{}.Name(), value.Call(natives.Clock{}))

	return &Interpreter{
		Writer:  w,
		reporter: r,
		globals: globals,
		current: globals,
		locals:  make(map[parser.Expr]int),
	}
}

// SetLocals merges the resolver's side-table into the interpreter's own,
// mapping each newly resolved Variable/Assign node to its enclosing-scope
// hop count. Merging rather than replacing matters for a long-lived
// Interpreter (a REPL session): the resolver runs fresh on every line, but
// entries from earlier lines — such as the captured locals inside a
// closure declared on an earlier line — must stay resolvable on later
// lines that only call it.
func (i *Interpreter) SetLocals(locals map[parser.Expr]int) {
	for expr, distance := range locals {
		i.locals[expr] = distance
	}
}

// Interpret executes stmts in order. A RuntimeError aborts the remainder
// of the list and is reported; it never escapes this call.
func (i *Interpreter) Interpret(stmts []parser.Stmt) {
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			if rerr, ok := err.(*RuntimeError); ok {
				i.reporter.ReportRuntime(rerr.Token.Line, rerr.Msg)
				return
			}
			// A *returnSignal escaping every call frame indicates a
			// top-level return; the resolver already rejects that
			// statically, so this should be unreachable in practice.
			return
		}
	}
}

// InterpretREPL behaves like Interpret, except that when stmts is exactly
// one bare ExpressionStmt (e.g. a line typed at the REPL that is neither
// a `print` nor a declaration nor a control statement), it evaluates the
// expression directly and returns its value instead of just discarding
// it, so the REPL can echo it. Any other statement shape runs through the
// ordinary Interpret path and the second return is false.
func (i *Interpreter) InterpretREPL(stmts []parser.Stmt) (value.Value, bool) {
	if len(stmts) == 1 {
		if es, ok := stmts[0].(*parser.ExpressionStmt); ok {
			v, err := i.eval(es.Expr)
			if err != nil {
				if rerr, ok := err.(*RuntimeError); ok {
					i.reporter.ReportRuntime(rerr.Token.Line, rerr.Msg)
				}
				return value.NilValue, false
			}
			return v, true
		}
	}
	i.Interpret(stmts)
	return value.NilValue, false
}

func (i *Interpreter) execute(stmt parser.Stmt) error {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := i.eval(s.Expr)
		return err

	case *parser.PrintStmt:
		v, err := i.eval(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.Writer, v.String())
		return nil

	case *parser.VarStmt:
		val := value.NilValue
		if s.Initializer != nil {
			v, err := i.eval(s.Initializer)
			if err != nil {
				return err
			}
			val = v
		}
		i.current.Define(s.Name.Lexeme, val)
		return nil

	case *parser.BlockStmt:
		return i.executeBlock(s.Stmts, environment.NewEnclosed(i.current))

	case *parser.IfStmt:
		cond, err := i.eval(s.Cond)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return i.execute(s.Then)
		}
		if s.Else != nil {
			return i.execute(s.Else)
		}
		return nil

	case *parser.WhileStmt:
		for {
			cond, err := i.eval(s.Cond)
			if err != nil {
				return err
			}
			if !cond.Truthy() {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}

	case *parser.FunctionStmt:
		fn := function.New(s, i.current)
		i.current.Define(s.Name.Lexeme, value.Call(fn))
		return nil

	case *parser.ReturnStmt:
		val := value.NilValue
		if s.Value != nil {
			v, err := i.eval(s.Value)
			if err != nil {
				return err
			}
			val = v
		}
		return &returnSignal{Value: val}
	}
	return nil
}

// executeBlock runs stmts against env, restoring the interpreter's
// current environment unconditionally on the way out — whether execution
// finished normally, hit a runtime error, or hit a return signal.
func (i *Interpreter) executeBlock(stmts []parser.Stmt, env *environment.Environment) error {
	previous := i.current
	i.current = env
	defer func() { i.current = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}
