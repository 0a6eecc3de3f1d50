package evaluator

import (
	"fmt"
	"unicode/utf16"

	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/token"
)

func (e *Evaluator) evalUnaryExpression(operator token.Token, right Value) (Value, error) {
	switch operator.Type {
	case token.BANG:
		return nativeBoolToBooleanObject(!isTruthy(right)), nil
	case token.MINUS:
		n, ok := right.(*Number)
		if !ok {
			return nil, newError(TypeError, operator, "Operand must be a number.")
		}
		return &Number{Value: -n.Value}, nil
	default:
		panic(fmt.Sprintf("evaluator: unknown unary operator %q", operator.Lexeme))
	}
}

// evalLogicalExpression returns one of the operand values, not a boolean.
func (e *Evaluator) evalLogicalExpression(node *ast.Logical) (Value, error) {
	left, err := e.eval(node.Left)
	if err != nil {
		return nil, err
	}

	switch node.Operator.Type {
	case token.OR:
		if isTruthy(left) {
			return left, nil
		}
	case token.AND:
		if !isTruthy(left) {
			return left, nil
		}
	default:
		panic(fmt.Sprintf("evaluator: unknown logical operator %q", node.Operator.Lexeme))
	}
	return e.eval(node.Right)
}

func (e *Evaluator) evalBinaryExpression(operator token.Token, left, right Value) (Value, error) {
	switch operator.Type {
	case token.EQUAL_EQUAL:
		return nativeBoolToBooleanObject(isEqual(left, right)), nil
	case token.BANG_EQUAL:
		return nativeBoolToBooleanObject(!isEqual(left, right)), nil
	case token.PLUS:
		return evalPlus(operator, left, right)
	}

	l, r, err := numberOperands(operator, left, right)
	if err != nil {
		return nil, err
	}

	switch operator.Type {
	case token.GREATER:
		return nativeBoolToBooleanObject(l > r), nil
	case token.GREATER_EQUAL:
		return nativeBoolToBooleanObject(l >= r), nil
	case token.LESS:
		return nativeBoolToBooleanObject(l < r), nil
	case token.LESS_EQUAL:
		return nativeBoolToBooleanObject(l <= r), nil
	case token.MINUS:
		return &Number{Value: l - r}, nil
	case token.STAR:
		return &Number{Value: l * r}, nil
	case token.SLASH:
		if r == 0 {
			return nil, newError(DivisionByZero, operator, "Division by zero.")
		}
		return &Number{Value: l / r}, nil
	default:
		panic(fmt.Sprintf("evaluator: unknown binary operator %q", operator.Lexeme))
	}
}

// evalPlus adds numbers and concatenates strings. A string mixed with a
// number, in either order, contributes the sum of its UTF-16 code units to
// the number.
func evalPlus(operator token.Token, left, right Value) (Value, error) {
	switch l := left.(type) {
	case *Number:
		switch r := right.(type) {
		case *Number:
			return &Number{Value: l.Value + r.Value}, nil
		case *String:
			return &Number{Value: charCodeSum(r.Value) + l.Value}, nil
		}
	case *String:
		switch r := right.(type) {
		case *String:
			return &String{Value: l.Value + r.Value}, nil
		case *Number:
			return &Number{Value: charCodeSum(l.Value) + r.Value}, nil
		}
	}
	return nil, newError(TypeError, operator, "Operands must be two numbers or two strings.")
}

func charCodeSum(s string) float64 {
	var sum float64
	for _, unit := range utf16.Encode([]rune(s)) {
		sum += float64(unit)
	}
	return sum
}

func numberOperands(operator token.Token, left, right Value) (float64, float64, error) {
	l, lok := left.(*Number)
	r, rok := right.(*Number)
	if !lok || !rok {
		return 0, 0, newError(TypeError, operator, "Operands must be numbers.")
	}
	return l.Value, r.Value, nil
}
