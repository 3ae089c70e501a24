/*
File    : loxy/parser/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "strings"

// Print renders expr as a parenthesized-prefix S-expression, e.g.
// `1 + 2 * 3` becomes `(+ 1 (* 2 3))`. This is purely a debugging aid —
// grounded on the original implementation's AstPrinter — with no bearing
// on evaluation.
func Print(expr Expr) string {
	var b strings.Builder
	writeExpr(&b, expr)
	return b.String()
}

func writeExpr(b *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *LiteralExpr:
		if !e.Value.Present {
			b.WriteString("nil")
			return
		}
		b.WriteString(e.Value.Value.String())
	case *GroupingExpr:
		parenthesize(b, "group", e.Inner)
	case *UnaryExpr:
		parenthesize(b, e.Op.Lexeme, e.Right)
	case *BinaryExpr:
		parenthesize(b, e.Op.Lexeme, e.Left, e.Right)
	case *LogicalExpr:
		parenthesize(b, e.Op.Lexeme, e.Left, e.Right)
	case *VariableExpr:
		b.WriteString(e.Name.Lexeme)
	case *AssignExpr:
		parenthesize(b, "= "+e.Name.Lexeme, e.Value)
	case *CallExpr:
		args := append([]Expr{e.Callee}, e.Args...)
		parenthesize(b, "call", args...)
	default:
		b.WriteString("<?>")
	}
}

func parenthesize(b *strings.Builder, name string, exprs ...Expr) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		writeExpr(b, e)
	}
	b.WriteByte(')')
}
