/*
File    : loxy/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/loxy/lexer"
	"github.com/akashmaji946/loxy/value"
)

// trueValue is the synthesized condition for a `for` loop whose condition
// clause is omitted.
var trueValue = value.Bool(true)

// expression → assignment
func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment → IDENTIFIER "=" assignment | logic_or
//
// The left-hand side is parsed as a normal expression first; only once an
// '=' follows do we inspect what was parsed. A Variable becomes an Assign
// node; anything else is an invalid assignment target, reported without
// throwing (the already-parsed left expression is returned unchanged so
// parsing can continue).
func (p *Parser) assignment() Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		val := p.assignment()

		if variable, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: variable.Name, Value: val}
		}
		p.reporter.ReportCompile(equals.Line, " at '"+equals.Lexeme+"'", "Invalid assignment target.")
		return expr
	}
	return expr
}

// logic_or → logic_and ( "or" logic_and )*
func (p *Parser) or() Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		op := p.previous()
		right := p.and()
		expr = &LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// logic_and → equality ( "and" equality )*
func (p *Parser) and() Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		op := p.previous()
		right := p.equality()
		expr = &LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// equality → comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// term → factor ( ( "-" | "+" ) factor )*
func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// factor → unary ( ( "/" | "*" ) unary )*
func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// unary → ( "!" | "-" ) unary | call
func (p *Parser) unary() Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		right := p.unary()
		return &UnaryExpr{Op: op, Right: right}
	}
	return p.call()
}

// call → primary ( "(" arguments? ")" )*
func (p *Parser) call() Expr {
	expr := p.primary()
	for {
		if p.match(lexer.LEFT_PAREN) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

// arguments → expression ( "," expression )* , capped at 255 entries.
func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= 255 {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &CallExpr{Callee: callee, Paren: paren, Args: args}
}

// primary → NUMBER | STRING | "true" | "false" | "nil"
//
//	| "(" expression ")" | IDENTIFIER
func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.FALSE, lexer.TRUE, lexer.NIL, lexer.NUMBER, lexer.STRING):
		return &LiteralExpr{Value: p.previous().Literal}
	case p.match(lexer.IDENTIFIER):
		return &VariableExpr{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &GroupingExpr{Inner: expr}
	}
	panic(p.errorAt(p.peek(), "Expect expression."))
}
