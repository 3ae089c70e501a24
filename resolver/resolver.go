/*
File    : loxy/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver implements the static lexical-scope analysis pass: a
// single walk over the AST that computes, for every variable reference,
// how many enclosing-environment hops separate its use from its binding.
// The result is a side-table keyed on AST node identity (Go pointer
// equality, since every expression node is parsed as a pointer) rather
// than on name, so that shadowing and re-declaration never collide.
package resolver

import (
	"github.com/akashmaji946/loxy/lexer"
	"github.com/akashmaji946/loxy/parser"
)

// reporter is the minimal interface the Resolver needs from a
// report.Reporter.
type reporter interface {
	ReportCompile(line int, where string, msg string)
}

// functionKind tracks whether resolution is currently inside a function
// body, which governs whether a top-level `return` is legal.
type functionKind int

const (
	kindNone functionKind = iota
	kindFunction
)

// scope maps a name in one lexical block to whether it has finished being
// defined (false while its own initializer is being resolved, true
// afterward).
type scope map[string]bool

// Resolver walks an AST once and produces a Locals side-table.
type Resolver struct {
	reporter        reporter
	scopes          []scope
	currentFunction functionKind
	locals          map[parser.Expr]int
}

// NewResolver creates a Resolver that reports resolution errors to r.
func NewResolver(r reporter) *Resolver {
	return &Resolver{reporter: r, locals: make(map[parser.Expr]int)}
}

// Resolve walks every statement in stmts and returns the side-table
// mapping each resolved Variable/Assign node to its scope-hop distance.
// Nodes absent from the returned map were not found in any local scope
// and must be looked up in the global environment at runtime.
func (r *Resolver) Resolve(stmts []parser.Stmt) map[parser.Expr]int {
	r.resolveStmts(stmts)
	return r.locals
}

func (r *Resolver) resolveStmts(stmts []parser.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

// declare inserts name into the innermost scope as "not yet defined",
// reporting a redeclaration error if the same local scope already
// declared it. Global shadowing (no enclosing scopes) is always allowed.
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	top := r.scopes[len(r.scopes)-1]
	if _, exists := top[name.Lexeme]; exists {
		r.reporter.ReportCompile(name.Line, " at '"+name.Lexeme+"'",
			"Already variable with this name in this scope.")
	}
	top[name.Lexeme] = false
}

func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal searches the scope stack innermost-first; if name is found
// at depth d (0 = innermost), expr is recorded in the side-table with
// distance d. A name found in no local scope is left untouched, meaning
// "look it up as a global at runtime."
func (r *Resolver) resolveLocal(expr parser.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}
