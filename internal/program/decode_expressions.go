package program

import (
	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/token"
	"gopkg.in/yaml.v3"
)

var (
	unaryOperators   = []string{token.MINUS, token.BANG}
	logicalOperators = []string{token.AND, token.OR}
	binaryOperators  = []string{
		token.MINUS, token.PLUS, token.SLASH, token.STAR,
		token.BANG_EQUAL, token.EQUAL_EQUAL,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL,
	}
)

func decodeExpression(n *yaml.Node) (ast.Expression, error) {
	key, val, err := variant(n)
	if err != nil {
		return nil, err
	}

	switch key.Value {
	case "literal":
		return decodeLiteral(key, val)
	case "grouping":
		inner, err := decodeExpression(val)
		if err != nil {
			return nil, err
		}
		return &ast.Grouping{Token: token.New(token.LPAREN, key.Line), Expression: inner}, nil
	case "unary":
		return decodeUnary(key, val)
	case "binary", "logical":
		return decodeInfix(key, val)
	case "variable":
		return decodeVariable(key, val)
	case "assign":
		return decodeAssign(key, val)
	default:
		return nil, errorAt(key, "unknown expression kind %q", key.Value)
	}
}

func decodeLiteral(key, val *yaml.Node) (ast.Expression, error) {
	if val.Kind != yaml.ScalarNode {
		return nil, errorAt(val, "literal must be a scalar")
	}
	lit := &ast.Literal{Token: token.Token{Lexeme: val.Value, Line: key.Line, Column: val.Column}}

	switch val.ShortTag() {
	case "!!int", "!!float":
		var f float64
		if err := val.Decode(&f); err != nil {
			return nil, errorAt(val, "invalid number %q", val.Value)
		}
		lit.Token.Type = token.NUMBER
		lit.Value = f
	case "!!str":
		lit.Token.Type = token.STRING
		lit.Value = val.Value
	case "!!bool":
		var b bool
		if err := val.Decode(&b); err != nil {
			return nil, errorAt(val, "invalid boolean %q", val.Value)
		}
		lit.Token.Type = token.FALSE
		if b {
			lit.Token.Type = token.TRUE
		}
		lit.Value = b
	case "!!null":
		lit.Token.Type = token.NIL
		lit.Token.Lexeme = "nil"
		lit.Value = nil
	default:
		return nil, errorAt(val, "unsupported literal tag %s", val.ShortTag())
	}
	lit.Token.Literal = lit.Value
	return lit, nil
}

func operatorToken(f map[string]*yaml.Node, at *yaml.Node, line int, allowed []string) (token.Token, error) {
	opNode, err := required(at, f, "op")
	if err != nil {
		return token.Token{}, err
	}
	if opNode.Kind != yaml.ScalarNode || !contains(allowed, opNode.Value) {
		return token.Token{}, errorAt(opNode, "unsupported operator %q", opNode.Value)
	}
	typ, _ := token.LookupOperator(opNode.Value)
	return token.Token{Type: typ, Lexeme: opNode.Value, Line: line, Column: opNode.Column}, nil
}

func decodeUnary(key, val *yaml.Node) (ast.Expression, error) {
	f, err := fields(val, "op", "line", "right")
	if err != nil {
		return nil, err
	}
	line, err := lineOf(f, key)
	if err != nil {
		return nil, err
	}
	op, err := operatorToken(f, val, line, unaryOperators)
	if err != nil {
		return nil, err
	}
	rightNode, err := required(val, f, "right")
	if err != nil {
		return nil, err
	}
	right, err := decodeExpression(rightNode)
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Operator: op, Right: right}, nil
}

func decodeInfix(key, val *yaml.Node) (ast.Expression, error) {
	f, err := fields(val, "op", "line", "left", "right")
	if err != nil {
		return nil, err
	}
	line, err := lineOf(f, key)
	if err != nil {
		return nil, err
	}
	allowed := binaryOperators
	if key.Value == "logical" {
		allowed = logicalOperators
	}
	op, err := operatorToken(f, val, line, allowed)
	if err != nil {
		return nil, err
	}

	leftNode, err := required(val, f, "left")
	if err != nil {
		return nil, err
	}
	rightNode, err := required(val, f, "right")
	if err != nil {
		return nil, err
	}
	left, err := decodeExpression(leftNode)
	if err != nil {
		return nil, err
	}
	right, err := decodeExpression(rightNode)
	if err != nil {
		return nil, err
	}

	if key.Value == "logical" {
		return &ast.Logical{Left: left, Operator: op, Right: right}, nil
	}
	return &ast.Binary{Left: left, Operator: op, Right: right}, nil
}

// decodeVariable accepts `variable: x` as well as `variable: {name: x, line: 3}`.
func decodeVariable(key, val *yaml.Node) (ast.Expression, error) {
	if val.Kind == yaml.ScalarNode {
		name, err := identifierName(val, "variable")
		if err != nil {
			return nil, err
		}
		return &ast.Variable{Name: token.Identifier(name, key.Line)}, nil
	}

	f, err := fields(val, "name", "line")
	if err != nil {
		return nil, err
	}
	nameNode, err := required(val, f, "name")
	if err != nil {
		return nil, err
	}
	name, err := identifierName(nameNode, "name")
	if err != nil {
		return nil, err
	}
	line, err := lineOf(f, key)
	if err != nil {
		return nil, err
	}
	return &ast.Variable{Name: token.Identifier(name, line)}, nil
}

func decodeAssign(key, val *yaml.Node) (ast.Expression, error) {
	f, err := fields(val, "name", "line", "value")
	if err != nil {
		return nil, err
	}
	nameNode, err := required(val, f, "name")
	if err != nil {
		return nil, err
	}
	name, err := identifierName(nameNode, "name")
	if err != nil {
		return nil, err
	}
	line, err := lineOf(f, key)
	if err != nil {
		return nil, err
	}
	valueNode, err := required(val, f, "value")
	if err != nil {
		return nil, err
	}
	value, err := decodeExpression(valueNode)
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Name: token.Identifier(name, line), Value: value}, nil
}
