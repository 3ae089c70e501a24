/*
File    : loxy/interp/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/loxy/environment"
	"github.com/akashmaji946/loxy/function"
	"github.com/akashmaji946/loxy/lexer"
	"github.com/akashmaji946/loxy/parser"
	"github.com/akashmaji946/loxy/value"
)

func (i *Interpreter) eval(expr parser.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		if !e.Value.Present {
			return value.NilValue, nil
		}
		return e.Value.Value, nil

	case *parser.GroupingExpr:
		return i.eval(e.Inner)

	case *parser.UnaryExpr:
		return i.evalUnary(e)

	case *parser.BinaryExpr:
		return i.evalBinary(e)

	case *parser.LogicalExpr:
		return i.evalLogical(e)

	case *parser.VariableExpr:
		return i.lookUpVariable(e.Name, e)

	case *parser.AssignExpr:
		return i.evalAssign(e)

	case *parser.CallExpr:
		return i.evalCall(e)
	}
	return value.NilValue, nil
}

func (i *Interpreter) evalUnary(e *parser.UnaryExpr) (value.Value, error) {
	right, err := i.eval(e.Right)
	if err != nil {
		return value.NilValue, err
	}
	switch e.Op.Type {
	case lexer.MINUS:
		if right.Kind() != value.KindNumber {
			return value.NilValue, runtimeErrorf(e.Op, "Operand must be a number.")
		}
		return value.Number(-right.AsNumber()), nil
	case lexer.BANG:
		return value.Bool(!right.Truthy()), nil
	}
	return value.NilValue, nil
}

func (i *Interpreter) evalLogical(e *parser.LogicalExpr) (value.Value, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return value.NilValue, err
	}
	if e.Op.Type == lexer.OR {
		if left.Truthy() {
			return left, nil
		}
	} else {
		if !left.Truthy() {
			return left, nil
		}
	}
	return i.eval(e.Right)
}

func (i *Interpreter) evalBinary(e *parser.BinaryExpr) (value.Value, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return value.NilValue, err
	}
	right, err := i.eval(e.Right)
	if err != nil {
		return value.NilValue, err
	}

	switch e.Op.Type {
	case lexer.MINUS:
		l, r, err := numberOperands(e.Op, left, right)
		if err != nil {
			return value.NilValue, err
		}
		return value.Number(l - r), nil

	case lexer.SLASH:
		l, r, err := numberOperands(e.Op, left, right)
		if err != nil {
			return value.NilValue, err
		}
		return value.Number(l / r), nil

	case lexer.STAR:
		l, r, err := numberOperands(e.Op, left, right)
		if err != nil {
			return value.NilValue, err
		}
		return value.Number(l * r), nil

	case lexer.PLUS:
		if left.Kind() == value.KindNumber && right.Kind() == value.KindNumber {
			return value.Number(left.AsNumber() + right.AsNumber()), nil
		}
		if left.Kind() == value.KindString && right.Kind() == value.KindString {
			return value.String(left.AsString() + right.AsString()), nil
		}
		return value.NilValue, runtimeErrorf(e.Op, "Operands must be two numbers or two strings.")

	case lexer.GREATER:
		l, r, err := numberOperands(e.Op, left, right)
		if err != nil {
			return value.NilValue, err
		}
		return value.Bool(l > r), nil

	case lexer.GREATER_EQUAL:
		l, r, err := numberOperands(e.Op, left, right)
		if err != nil {
			return value.NilValue, err
		}
		return value.Bool(l >= r), nil

	case lexer.LESS:
		l, r, err := numberOperands(e.Op, left, right)
		if err != nil {
			return value.NilValue, err
		}
		return value.Bool(l < r), nil

	case lexer.LESS_EQUAL:
		l, r, err := numberOperands(e.Op, left, right)
		if err != nil {
			return value.NilValue, err
		}
		return value.Bool(l <= r), nil

	case lexer.BANG_EQUAL:
		return value.Bool(!value.Equal(left, right)), nil

	case lexer.EQUAL_EQUAL:
		return value.Bool(value.Equal(left, right)), nil
	}
	return value.NilValue, nil
}

func numberOperands(op lexer.Token, left, right value.Value) (float64, float64, error) {
	if left.Kind() != value.KindNumber || right.Kind() != value.KindNumber {
		return 0, 0, runtimeErrorf(op, "Operands must be numbers.")
	}
	return left.AsNumber(), right.AsNumber(), nil
}

// lookUpVariable consults the resolver's side-table for expr; a recorded
// distance means a fixed-hop lookup in the environment chain, its absence
// means a chain-free lookup in globals.
func (i *Interpreter) lookUpVariable(name lexer.Token, expr parser.Expr) (value.Value, error) {
	if distance, ok := i.locals[expr]; ok {
		return i.current.GetAt(distance, name.Lexeme), nil
	}
	v, err := i.globals.Get(name.Lexeme)
	if err != nil {
		return value.NilValue, runtimeErrorf(name, "%s", err.Error())
	}
	return v, nil
}

func (i *Interpreter) evalAssign(e *parser.AssignExpr) (value.Value, error) {
	val, err := i.eval(e.Value)
	if err != nil {
		return value.NilValue, err
	}

	if distance, ok := i.locals[e]; ok {
		i.current.AssignAt(distance, e.Name.Lexeme, val)
		return val, nil
	}
	if err := i.globals.Assign(e.Name.Lexeme, val); err != nil {
		return value.NilValue, runtimeErrorf(e.Name, "%s", err.Error())
	}
	return val, nil
}

func (i *Interpreter) evalCall(e *parser.CallExpr) (value.Value, error) {
	callee, err := i.eval(e.Callee)
	if err != nil {
		return value.NilValue, err
	}

	args := make([]value.Value, len(e.Args))
	for idx, argExpr := range e.Args {
		v, err := i.eval(argExpr)
		if err != nil {
			return value.NilValue, err
		}
		args[idx] = v
	}

	if callee.Kind() != value.KindCallable {
		return value.NilValue, runtimeErrorf(e.Paren, "Can only call functions and classes.")
	}
	callable := callee.AsCallable()

	if len(args) != callable.Arity() {
		return value.NilValue, runtimeErrorf(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	switch fn := callable.(type) {
	case nativeCallable:
		return fn.Call(args)
	case *function.Function:
		return i.callFunction(fn, args)
	}
	return value.NilValue, runtimeErrorf(e.Paren, "Can only call functions and classes.")
}

// callFunction executes fn's body in a fresh environment chained to its
// captured closure, with parameters bound to args. A return signal
// unwound from the body becomes the call's result; normal completion
// yields nil.
func (i *Interpreter) callFunction(fn *function.Function, args []value.Value) (value.Value, error) {
	callEnv := environment.NewEnclosed(fn.Closure)
	for idx, param := range fn.Declaration.Params {
		callEnv.Define(param.Lexeme, args[idx])
	}

	err := i.executeBlock(fn.Declaration.Body, callEnv)
	if err == nil {
		return value.NilValue, nil
	}
	if ret, ok := err.(*returnSignal); ok {
		return ret.Value, nil
	}
	return value.NilValue, err
}
