package evaluator

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AST builders. Everything sits on line 1 unless a test says otherwise.

func lit(v any) *ast.Literal {
	return &ast.Literal{Token: token.Token{Type: token.NUMBER, Literal: v, Line: 1}, Value: v}
}

func op(lexeme string, line int) token.Token {
	typ, ok := token.LookupOperator(lexeme)
	if !ok {
		panic("unknown operator " + lexeme)
	}
	return token.Token{Type: typ, Lexeme: lexeme, Line: line}
}

func binary(left ast.Expression, operator string, right ast.Expression) *ast.Binary {
	return &ast.Binary{Left: left, Operator: op(operator, 1), Right: right}
}

func logical(left ast.Expression, operator string, right ast.Expression) *ast.Logical {
	return &ast.Logical{Left: left, Operator: op(operator, 1), Right: right}
}

func unary(operator string, right ast.Expression) *ast.Unary {
	return &ast.Unary{Operator: op(operator, 1), Right: right}
}

func variable(name string, line int) *ast.Variable {
	return &ast.Variable{Name: token.Identifier(name, line)}
}

func assign(name string, value ast.Expression) *ast.Assign {
	return &ast.Assign{Name: token.Identifier(name, 1), Value: value}
}

func printStmt(expr ast.Expression) *ast.PrintStatement {
	return &ast.PrintStatement{Token: token.New(token.PRINT, 1), Expression: expr}
}

func varStmt(name string, init ast.Expression) *ast.VarStatement {
	return &ast.VarStatement{Name: token.Identifier(name, 1), Initializer: init}
}

func exprStmt(expr ast.Expression) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Token: expr.GetToken(), Expression: expr}
}

func block(stmts ...ast.Statement) *ast.BlockStatement {
	return &ast.BlockStatement{Token: token.New(token.LBRACE, 1), Statements: stmts}
}

func newTestEvaluator() (*Evaluator, *bytes.Buffer, *bytes.Buffer) {
	e := New()
	var out, errOut bytes.Buffer
	e.Out = &out
	e.Err = &errOut
	return e, &out, &errOut
}

func evaluate(t *testing.T, expr ast.Expression) Value {
	t.Helper()
	e, _, _ := newTestEvaluator()
	v, err := e.Evaluate(expr)
	require.NoError(t, err)
	return v
}

func evaluateErr(t *testing.T, expr ast.Expression) *RuntimeError {
	t.Helper()
	e, _, _ := newTestEvaluator()
	_, err := e.Evaluate(expr)
	require.Error(t, err)
	var rtErr *RuntimeError
	require.True(t, errors.As(err, &rtErr), "expected *RuntimeError, got %T", err)
	return rtErr
}

func TestPlusNumbers(t *testing.T) {
	tests := []struct{ a, b float64 }{
		{1, 2}, {0, 0}, {-1.5, 0.25}, {1e10, 1}, {-3, 3},
	}
	for _, tt := range tests {
		v := evaluate(t, binary(lit(tt.a), "+", lit(tt.b)))
		assert.Equal(t, &Number{Value: tt.a + tt.b}, v)
	}
}

func TestPlusStrings(t *testing.T) {
	tests := []struct{ a, b string }{
		{"foo", "bar"}, {"", ""}, {"a", ""}, {"", "b"}, {"héllo ", "wörld"},
	}
	for _, tt := range tests {
		v := evaluate(t, binary(lit(tt.a), "+", lit(tt.b)))
		assert.Equal(t, &String{Value: tt.a + tt.b}, v)
	}
}

func TestPlusStringNumberSumsCharCodes(t *testing.T) {
	v := evaluate(t, binary(lit("ab"), "+", lit(3.0)))
	assert.Equal(t, &Number{Value: 198}, v)

	// Operand order does not matter.
	v = evaluate(t, binary(lit(3.0), "+", lit("ab")))
	assert.Equal(t, &Number{Value: 198}, v)

	v = evaluate(t, binary(lit(""), "+", lit(1.5)))
	assert.Equal(t, &Number{Value: 1.5}, v)

	// Characters outside the BMP count as two UTF-16 code units.
	v = evaluate(t, binary(lit("😀"), "+", lit(0.0)))
	assert.Equal(t, &Number{Value: 0xD83D + 0xDE00}, v)
}

func TestPlusTypeError(t *testing.T) {
	tests := []struct {
		name        string
		left, right any
	}{
		{"bool+number", true, 1.0},
		{"nil+string", nil, "a"},
		{"bool+bool", true, false},
		{"nil+nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := evaluateErr(t, binary(lit(tt.left), "+", lit(tt.right)))
			assert.ErrorIs(t, err, TypeError)
			assert.Equal(t, "Operands must be two numbers or two strings.", err.Message)
		})
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		op   string
		a, b float64
		want float64
	}{
		{"-", 5, 3, 2},
		{"*", 4, 2.5, 10},
		{"/", 7, 2, 3.5},
		{"/", 0, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			v := evaluate(t, binary(lit(tt.a), tt.op, lit(tt.b)))
			assert.Equal(t, &Number{Value: tt.want}, v)
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	err := evaluateErr(t, binary(lit(5.0), "/", lit(0.0)))
	assert.ErrorIs(t, err, DivisionByZero)
	assert.Equal(t, "Division by zero.", err.Message)
	assert.Equal(t, 1, err.Line())

	// Negative zero is zero too.
	err = evaluateErr(t, binary(lit(5.0), "/", unary("-", lit(0.0))))
	assert.ErrorIs(t, err, DivisionByZero)

	// Type checks come first.
	err = evaluateErr(t, binary(lit("a"), "/", lit(0.0)))
	assert.ErrorIs(t, err, TypeError)
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		op   string
		a, b float64
		want bool
	}{
		{"<", 1, 2, true},
		{"<", 2, 2, false},
		{"<=", 2, 2, true},
		{">", 3, 2, true},
		{">", 2, 3, false},
		{">=", 2, 2, true},
	}
	for _, tt := range tests {
		v := evaluate(t, binary(lit(tt.a), tt.op, lit(tt.b)))
		assert.Equal(t, nativeBoolToBooleanObject(tt.want), v, "%v %s %v", tt.a, tt.op, tt.b)
	}
}

func TestNumberOperandsTypeError(t *testing.T) {
	for _, operator := range []string{"<", "<=", ">", ">=", "-", "*", "/"} {
		t.Run(operator, func(t *testing.T) {
			err := evaluateErr(t, binary(lit("1"), operator, lit(1.0)))
			assert.ErrorIs(t, err, TypeError)
			assert.Equal(t, "Operands must be numbers.", err.Message)
		})
	}
}

func TestEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nil nil", nil, nil, true},
		{"nil false", nil, false, false},
		{"false nil", false, nil, false},
		{"numbers", 1.0, 1.0, true},
		{"different numbers", 1.0, 2.0, false},
		{"strings", "a", "a", true},
		{"number string", 1.0, "1", false},
		{"booleans", true, true, true},
		{"zero false", 0.0, false, false},
		{"zero negative zero", 0.0, math.Copysign(0, -1), false},
		{"nan nan", math.NaN(), math.NaN(), true},
		{"nan number", math.NaN(), 1.0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := evaluate(t, binary(lit(tt.a), "==", lit(tt.b)))
			assert.Equal(t, nativeBoolToBooleanObject(tt.want), v)
			v = evaluate(t, binary(lit(tt.a), "!=", lit(tt.b)))
			assert.Equal(t, nativeBoolToBooleanObject(!tt.want), v)
		})
	}
}

func TestUnary(t *testing.T) {
	assert.Equal(t, TRUE, evaluate(t, unary("!", lit(nil))))
	assert.Equal(t, FALSE, evaluate(t, unary("!", lit(0.0))))
	assert.Equal(t, FALSE, evaluate(t, unary("!", lit(""))))
	assert.Equal(t, TRUE, evaluate(t, unary("!", lit(false))))
	assert.Equal(t, &Number{Value: -4}, evaluate(t, unary("-", lit(4.0))))

	err := evaluateErr(t, unary("-", lit("4")))
	assert.ErrorIs(t, err, TypeError)
	assert.Equal(t, "Operand must be a number.", err.Message)
}

func TestGrouping(t *testing.T) {
	expr := binary(&ast.Grouping{Expression: binary(lit(1.0), "+", lit(2.0))}, "*", lit(3.0))
	assert.Equal(t, &Number{Value: 9}, evaluate(t, expr))
}

func TestLogicalReturnsOperand(t *testing.T) {
	tests := []struct {
		name     string
		left     any
		operator string
		right    any
		want     Value
	}{
		{"1 or 2", 1.0, "or", 2.0, &Number{Value: 1}},
		{"nil or 2", nil, "or", 2.0, &Number{Value: 2}},
		{"false or nil", false, "or", nil, NIL},
		{"1 and 2", 1.0, "and", 2.0, &Number{Value: 2}},
		{"nil and 2", nil, "and", 2.0, NIL},
		{"empty string and x", "", "and", "x", &String{Value: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := evaluate(t, logical(lit(tt.left), tt.operator, lit(tt.right)))
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestLogicalShortCircuits(t *testing.T) {
	// The right operands reference an undefined variable; evaluating them would fail.
	v := evaluate(t, logical(lit(true), "or", variable("missing", 1)))
	assert.Equal(t, TRUE, v)

	v = evaluate(t, logical(lit(false), "and", variable("missing", 1)))
	assert.Equal(t, FALSE, v)

	err := evaluateErr(t, logical(lit(false), "or", variable("missing", 4)))
	assert.ErrorIs(t, err, UndefinedVariable)
}

func TestUnsupportedLiteral(t *testing.T) {
	err := evaluateErr(t, lit([]int{1}))
	assert.ErrorIs(t, err, TypeError)
}

func TestPrintFormatting(t *testing.T) {
	tests := []struct {
		expr ast.Expression
		want string
	}{
		{lit(3.0), "3"},
		{lit(2.5), "2.5"},
		{lit(-0.125), "-0.125"},
		{lit(1e21), "1.0E21"},
		{lit(1e7), "1.0E7"},
		{lit(0.0001), "1.0E-4"},
		{binary(lit(1e6), "*", lit(10.0)), "1.0E7"},
		{lit(nil), "nil"},
		{lit(true), "true"},
		{lit(false), "false"},
		{lit("hi there"), "hi there"},
		{binary(lit(1e308), "*", lit(10.0)), "Infinity"},
		{binary(lit(-1e308), "*", lit(10.0)), "-Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			e, out, _ := newTestEvaluator()
			e.Interpret([]ast.Statement{printStmt(tt.expr)})
			assert.Equal(t, tt.want+"\n", out.String())
		})
	}
}

func TestBlockShadowingDoesNotLeak(t *testing.T) {
	// var x = 1; { var x = 2; print x; } print x;
	e, out, errOut := newTestEvaluator()
	e.Interpret([]ast.Statement{
		varStmt("x", lit(1.0)),
		block(
			varStmt("x", lit(2.0)),
			printStmt(variable("x", 1)),
		),
		printStmt(variable("x", 1)),
	})
	assert.Equal(t, "2\n1\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestAssignmentReachesOuterScope(t *testing.T) {
	// var y = 1; { y = 2; } print y;
	e, out, _ := newTestEvaluator()
	e.Interpret([]ast.Statement{
		varStmt("y", lit(1.0)),
		block(exprStmt(assign("y", lit(2.0)))),
		printStmt(variable("y", 1)),
	})
	assert.Equal(t, "2\n", out.String())
}

func TestAssignIsAnExpression(t *testing.T) {
	e, out, _ := newTestEvaluator()
	e.Interpret([]ast.Statement{
		varStmt("a", nil),
		printStmt(assign("a", lit("v"))),
		printStmt(variable("a", 1)),
	})
	assert.Equal(t, "v\nv\n", out.String())
}

func TestAssignUndefined(t *testing.T) {
	e, _, _ := newTestEvaluator()
	_, err := e.Evaluate(assign("nope", lit(1.0)))
	assert.ErrorIs(t, err, UndefinedVariable)

	// Assignment never creates a binding.
	_, err = e.Evaluate(variable("nope", 1))
	assert.ErrorIs(t, err, UndefinedVariable)
}

func TestVarWithoutInitializerIsNil(t *testing.T) {
	e, out, _ := newTestEvaluator()
	e.Interpret([]ast.Statement{varStmt("a", nil), printStmt(variable("a", 1))})
	assert.Equal(t, "nil\n", out.String())
}

func TestRedeclareInSameScope(t *testing.T) {
	e, out, _ := newTestEvaluator()
	e.Interpret([]ast.Statement{
		varStmt("a", lit(1.0)),
		varStmt("a", lit("two")),
		printStmt(variable("a", 1)),
	})
	assert.Equal(t, "two\n", out.String())
}

func TestUndefinedVariableNamesIdentifierAndLine(t *testing.T) {
	err := evaluateErr(t, variable("ghost", 7))
	assert.ErrorIs(t, err, UndefinedVariable)
	assert.Equal(t, "Undefined variable 'ghost'.", err.Message)
	assert.Equal(t, 7, err.Line())
	assert.Equal(t, "ghost", err.Token.Lexeme)
}

func TestIfStatement(t *testing.T) {
	ifStmt := func(cond any, withElse bool) *ast.IfStatement {
		s := &ast.IfStatement{
			Token:     token.New(token.IF, 1),
			Condition: lit(cond),
			Then:      printStmt(lit("then")),
		}
		if withElse {
			s.Else = printStmt(lit("else"))
		}
		return s
	}

	tests := []struct {
		name     string
		cond     any
		withElse bool
		want     string
	}{
		{"true", true, true, "then\n"},
		{"zero is truthy", 0.0, true, "then\n"},
		{"nil", nil, true, "else\n"},
		{"false without else", false, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, out, _ := newTestEvaluator()
			e.Interpret([]ast.Statement{ifStmt(tt.cond, tt.withElse)})
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestInterpretReportsAndStops(t *testing.T) {
	e, out, errOut := newTestEvaluator()
	e.Interpret([]ast.Statement{
		printStmt(lit("before")),
		printStmt(variable("missing", 3)),
		printStmt(lit("after")),
	})
	assert.Equal(t, "before\n", out.String())
	assert.Equal(t, "Undefined variable 'missing'.\n[line 3]\n", errOut.String())

	// The evaluator stays usable for the next call.
	out.Reset()
	e.Interpret([]ast.Statement{printStmt(lit("again"))})
	assert.Equal(t, "again\n", out.String())
}

func TestScopeRestoredAfterErrorInBlock(t *testing.T) {
	e, out, errOut := newTestEvaluator()
	e.Interpret([]ast.Statement{
		varStmt("x", lit("outer")),
		block(
			varStmt("x", lit("inner")),
			block(exprStmt(binary(lit(1.0), "/", lit(0.0)))),
		),
	})
	assert.Contains(t, errOut.String(), "Division by zero.")
	assert.Same(t, e.Globals, e.Environment())

	e.Interpret([]ast.Statement{printStmt(variable("x", 1))})
	assert.Equal(t, "outer\n", out.String())
}

func TestGlobalsPersistAcrossInterpretCalls(t *testing.T) {
	e, out, _ := newTestEvaluator()
	e.Interpret([]ast.Statement{varStmt("g", lit(41.0))})
	e.Interpret([]ast.Statement{printStmt(binary(variable("g", 1), "+", lit(1.0)))})
	assert.Equal(t, "42\n", out.String())
}

func TestExecuteReturnsError(t *testing.T) {
	e, _, errOut := newTestEvaluator()
	err := e.Execute([]ast.Statement{exprStmt(unary("-", lit(nil)))})
	require.Error(t, err)
	assert.ErrorIs(t, err, TypeError)
	assert.Equal(t, "Operand must be a number.\n[line 1]", FormatRuntimeError(err))
	assert.Empty(t, errOut.String())
}

func TestCancelledContext(t *testing.T) {
	e, out, _ := newTestEvaluator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e.Context = ctx

	err := e.Execute([]ast.Statement{printStmt(lit(1.0))})
	assert.ErrorIs(t, err, Cancelled)
	assert.Empty(t, out.String())
}

func TestMaxDepth(t *testing.T) {
	var expr ast.Expression = lit(1.0)
	for i := 0; i < 20; i++ {
		expr = &ast.Grouping{Expression: expr}
	}

	e, _, _ := newTestEvaluator()
	e.MaxDepth = 10
	_, err := e.Evaluate(expr)
	assert.ErrorIs(t, err, DepthExceeded)

	// Depth is released on the error path as well.
	e.MaxDepth = 100
	v, err := e.Evaluate(expr)
	require.NoError(t, err)
	assert.Equal(t, &Number{Value: 1}, v)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "TypeError", TypeError.String())
	assert.Equal(t, "DivisionByZero", DivisionByZero.Error())
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())
	assert.NotErrorIs(t, &RuntimeError{Kind: TypeError}, DivisionByZero)
}
