/*
File    : loxy/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/loxy/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	messages []string
}

func (r *recordingReporter) ReportCompile(line int, where string, msg string) {
	r.messages = append(r.messages, msg)
}

func parse(t *testing.T, src string) ([]Stmt, *recordingReporter) {
	t.Helper()
	rep := &recordingReporter{}
	toks := lexer.NewScanner(src, rep).ScanTokens()
	stmts := NewParser(toks, rep).Parse()
	return stmts, rep
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	stmts, rep := parse(t, "1 + 2 * 3;")
	require.Empty(t, rep.messages)
	require.Len(t, stmts, 1)
	exprStmt := stmts[0].(*ExpressionStmt)
	assert.Equal(t, "(+ 1 (* 2 3))", Print(exprStmt.Expr))
}

func TestParse_Grouping(t *testing.T) {
	stmts, rep := parse(t, "(1 + 2) * 3;")
	require.Empty(t, rep.messages)
	exprStmt := stmts[0].(*ExpressionStmt)
	assert.Equal(t, "(* (group (+ 1 2)) 3)", Print(exprStmt.Expr))
}

func TestParse_VarDeclarationWithoutInitializer(t *testing.T) {
	stmts, rep := parse(t, "var x;")
	require.Empty(t, rep.messages)
	require.Len(t, stmts, 1)
	varStmt := stmts[0].(*VarStmt)
	assert.Equal(t, "x", varStmt.Name.Lexeme)
	assert.Nil(t, varStmt.Initializer)
}

func TestParse_IfElse(t *testing.T) {
	stmts, rep := parse(t, "if (true) print 1; else print 2;")
	require.Empty(t, rep.messages)
	ifStmt := stmts[0].(*IfStmt)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParse_WhileLoop(t *testing.T) {
	stmts, rep := parse(t, "while (x < 10) x = x + 1;")
	require.Empty(t, rep.messages)
	_, ok := stmts[0].(*WhileStmt)
	assert.True(t, ok)
}

// A for loop desugars into Block[ init, While(cond, Block[body, incr]) ].
func TestParse_ForLoopDesugaring(t *testing.T) {
	stmts, rep := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.Empty(t, rep.messages)
	block, ok := stmts[0].(*BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Stmts, 2)

	_, ok = block.Stmts[0].(*VarStmt)
	assert.True(t, ok, "first statement should be the initializer")

	whileStmt, ok := block.Stmts[1].(*WhileStmt)
	require.True(t, ok, "second statement should be the desugared while loop")
	assert.Equal(t, "(< i 3)", Print(whileStmt.Cond))

	bodyBlock, ok := whileStmt.Body.(*BlockStmt)
	require.True(t, ok)
	require.Len(t, bodyBlock.Stmts, 2)
	_, ok = bodyBlock.Stmts[1].(*ExpressionStmt)
	assert.True(t, ok, "last statement should be the increment")
}

func TestParse_ForLoopMissingConditionDefaultsToTrue(t *testing.T) {
	stmts, rep := parse(t, "for (;;) print 1;")
	require.Empty(t, rep.messages)
	// No initializer clause means no enclosing Block is needed: the
	// desugared form is the bare While statement.
	whileStmt := stmts[0].(*WhileStmt)
	lit := whileStmt.Cond.(*LiteralExpr)
	assert.True(t, lit.Value.Value.Truthy())
}

func TestParse_FunctionDeclaration(t *testing.T) {
	stmts, rep := parse(t, "fun add(a, b) { return a + b; }")
	require.Empty(t, rep.messages)
	fn := stmts[0].(*FunctionStmt)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Lexeme)
	require.Len(t, fn.Body, 1)
	_, ok := fn.Body[0].(*ReturnStmt)
	assert.True(t, ok)
}

func TestParse_Call(t *testing.T) {
	stmts, rep := parse(t, "add(1, 2);")
	require.Empty(t, rep.messages)
	exprStmt := stmts[0].(*ExpressionStmt)
	call := exprStmt.Expr.(*CallExpr)
	assert.Len(t, call.Args, 2)
}

func TestParse_LogicalShortCircuitOperators(t *testing.T) {
	stmts, rep := parse(t, "a or b and c;")
	require.Empty(t, rep.messages)
	exprStmt := stmts[0].(*ExpressionStmt)
	logical := exprStmt.Expr.(*LogicalExpr)
	assert.Equal(t, lexer.OR, logical.Op.Type)
}

func TestParse_AssignmentToVariableBecomesAssignNode(t *testing.T) {
	stmts, rep := parse(t, "x = 5;")
	require.Empty(t, rep.messages)
	exprStmt := stmts[0].(*ExpressionStmt)
	_, ok := exprStmt.Expr.(*AssignExpr)
	assert.True(t, ok)
}

func TestParse_InvalidAssignmentTargetReportsButDoesNotThrow(t *testing.T) {
	stmts, rep := parse(t, "1 = 2;")
	require.NotEmpty(t, rep.messages)
	assert.Contains(t, rep.messages, "Invalid assignment target.")
	// Parsing continues: the statement is still produced.
	require.Len(t, stmts, 1)
}

func TestParse_ClassDeclarationIsRejected(t *testing.T) {
	_, rep := parse(t, "class Foo {}")
	require.NotEmpty(t, rep.messages)
	assert.Contains(t, rep.messages, "Class declarations are not supported.")
}

func TestParse_MissingSemicolonRecoversAtNextStatement(t *testing.T) {
	stmts, rep := parse(t, "print 1 1 print 2;")
	require.NotEmpty(t, rep.messages)
	// The missing ';' is reported at the stray "1"; synchronize() skips
	// that token and stops before the "print" keyword, so the first
	// (malformed) print statement is dropped and the second survives.
	require.Len(t, stmts, 1)
	printStmt, ok := stmts[0].(*PrintStmt)
	require.True(t, ok)
	lit := printStmt.Expr.(*LiteralExpr)
	assert.Equal(t, 2.0, lit.Value.Value.AsNumber())
}

func TestParse_TooManyArgumentsReportsButStillParses(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ","
		}
		src += "1"
	}
	src += ");"
	stmts, rep := parse(t, src)
	assert.Contains(t, rep.messages, "Can't have more than 255 arguments.")
	require.Len(t, stmts, 1)
}

func TestParse_ReturnWithoutValue(t *testing.T) {
	stmts, rep := parse(t, "fun f() { return; }")
	require.Empty(t, rep.messages)
	fn := stmts[0].(*FunctionStmt)
	ret := fn.Body[0].(*ReturnStmt)
	assert.Nil(t, ret.Value)
}

func TestParse_BlockScopesNested(t *testing.T) {
	stmts, rep := parse(t, "{ var a = 1; { var b = 2; } }")
	require.Empty(t, rep.messages)
	block := stmts[0].(*BlockStmt)
	require.Len(t, block.Stmts, 2)
	_, ok := block.Stmts[1].(*BlockStmt)
	assert.True(t, ok)
}
