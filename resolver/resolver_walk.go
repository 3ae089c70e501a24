/*
File    : loxy/resolver/resolver_walk.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import "github.com/akashmaji946/loxy/parser"

func (r *Resolver) resolveStmt(stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		r.resolveExpr(s.Expr)

	case *parser.PrintStmt:
		r.resolveExpr(s.Expr)

	case *parser.VarStmt:
		// declare, then resolve the initializer (so the name is visible
		// but not yet defined — reading it there is an error), then
		// define once the initializer has been handled.
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *parser.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()

	case *parser.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *parser.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	case *parser.FunctionStmt:
		// Declare and define the function's own name before resolving its
		// body, so the function can call itself recursively.
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s)

	case *parser.ReturnStmt:
		if r.currentFunction == kindNone {
			r.reporter.ReportCompile(s.Keyword.Line, " at '"+s.Keyword.Lexeme+"'",
				"Can't return from top-level code.")
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	}
}

// resolveFunction enters a new scope for the parameters — nested inside
// the scope that declared the function's own name — then a second scope
// is NOT introduced for the body: the body's statements resolve directly
// in the parameter scope, matching the original's resolveFunction shape.
func (r *Resolver) resolveFunction(fn *parser.FunctionStmt) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kindFunction
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	defer r.endScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
}

func (r *Resolver) resolveExpr(expr parser.Expr) {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		// Nothing to resolve.

	case *parser.GroupingExpr:
		r.resolveExpr(e.Inner)

	case *parser.UnaryExpr:
		r.resolveExpr(e.Right)

	case *parser.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *parser.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *parser.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.reporter.ReportCompile(e.Name.Line, " at '"+e.Name.Lexeme+"'",
					"Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)

	case *parser.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *parser.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}
	}
}
