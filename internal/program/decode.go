// Package program reads programs that were parsed elsewhere and serialized
// as YAML. A document is a sequence of statements; every node is a mapping
// with a single key naming its kind:
//
//	- var: {name: x, init: {literal: 1}}
//	- print:
//	    binary:
//	      op: "+"
//	      left: {variable: x}
//	      right: {literal: 2}
//
// Source lines default to the YAML line of the node and may be overridden
// with a `line` field.
package program

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/token"
	"gopkg.in/yaml.v3"
)

// DecodeError points at the YAML line of the offending node.
type DecodeError struct {
	Line   int
	Column int
	Msg    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.Msg)
}

func errorAt(n *yaml.Node, format string, a ...any) *DecodeError {
	return &DecodeError{Line: n.Line, Column: n.Column, Msg: fmt.Sprintf(format, a...)}
}

// Load reads and decodes the program file at path.
func Load(path string) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading program %s: %w", path, err)
	}
	stmts, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &ast.Program{File: path, Statements: stmts}, nil
}

// Decode turns a YAML document into statements. An empty document is an
// empty program.
func Decode(data []byte) ([]ast.Statement, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing program: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	return decodeStatements(doc.Content[0])
}

// DecodeExpression decodes a single expression node, e.g. `{literal: 1}`.
func DecodeExpression(data []byte) (ast.Expression, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing expression: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, &DecodeError{Line: 1, Column: 1, Msg: "empty expression"}
	}
	return decodeExpression(doc.Content[0])
}

func deref(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func decodeStatements(n *yaml.Node) ([]ast.Statement, error) {
	n = deref(n)
	if n.Kind != yaml.SequenceNode {
		return nil, errorAt(n, "expected a sequence of statements")
	}
	stmts := make([]ast.Statement, 0, len(n.Content))
	for _, item := range n.Content {
		stmt, err := decodeStatement(item)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// variant splits a single-key mapping into its key node and value node.
func variant(n *yaml.Node) (*yaml.Node, *yaml.Node, error) {
	n = deref(n)
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return nil, nil, errorAt(n, "expected a mapping with exactly one key naming the node kind")
	}
	return n.Content[0], deref(n.Content[1]), nil
}

// fields reads a mapping into a key→value map, rejecting keys outside allowed.
func fields(n *yaml.Node, allowed ...string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errorAt(n, "expected a mapping")
	}
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if !contains(allowed, key.Value) {
			sorted := append([]string(nil), allowed...)
			sort.Strings(sorted)
			return nil, errorAt(key, "unknown field %q (allowed: %s)", key.Value, strings.Join(sorted, ", "))
		}
		if _, dup := out[key.Value]; dup {
			return nil, errorAt(key, "duplicate field %q", key.Value)
		}
		out[key.Value] = deref(n.Content[i+1])
	}
	return out, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func required(n *yaml.Node, f map[string]*yaml.Node, name string) (*yaml.Node, error) {
	v, ok := f[name]
	if !ok {
		return nil, errorAt(n, "missing field %q", name)
	}
	return v, nil
}

// lineOf returns the explicit `line` field or the YAML line of at.
func lineOf(f map[string]*yaml.Node, at *yaml.Node) (int, error) {
	v, ok := f["line"]
	if !ok {
		return at.Line, nil
	}
	var line int
	if err := v.Decode(&line); err != nil || line < 1 {
		return 0, errorAt(v, "line must be a positive integer")
	}
	return line, nil
}

func scalarString(n *yaml.Node, what string) (string, error) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!str" || n.Value == "" {
		return "", errorAt(n, "%s must be a non-empty string", what)
	}
	return n.Value, nil
}

// identifierName is scalarString restricted to names that are not keywords.
func identifierName(n *yaml.Node, what string) (string, error) {
	name, err := scalarString(n, what)
	if err != nil {
		return "", err
	}
	if token.LookupIdent(name) != token.IDENTIFIER {
		return "", errorAt(n, "%s %q is a reserved word", what, name)
	}
	return name, nil
}

func decodeStatement(n *yaml.Node) (ast.Statement, error) {
	key, val, err := variant(n)
	if err != nil {
		return nil, err
	}

	switch key.Value {
	case "expression":
		expr, err := decodeExpression(val)
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Token: expr.GetToken(), Expression: expr}, nil
	case "print":
		expr, err := decodeExpression(val)
		if err != nil {
			return nil, err
		}
		return &ast.PrintStatement{Token: token.New(token.PRINT, key.Line), Expression: expr}, nil
	case "var":
		return decodeVar(key, val)
	case "if":
		return decodeIf(key, val)
	case "block":
		stmts, err := decodeStatements(val)
		if err != nil {
			return nil, err
		}
		return &ast.BlockStatement{Token: token.New(token.LBRACE, key.Line), Statements: stmts}, nil
	default:
		return nil, errorAt(key, "unknown statement kind %q", key.Value)
	}
}

func decodeVar(key, val *yaml.Node) (ast.Statement, error) {
	f, err := fields(val, "name", "line", "init")
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

	stmt := &ast.VarStatement{Name: token.Identifier(name, line)}
	if init, ok := f["init"]; ok {
		if stmt.Initializer, err = decodeExpression(init); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func decodeIf(key, val *yaml.Node) (ast.Statement, error) {
	f, err := fields(val, "condition", "then", "else", "line")
	if err != nil {
		return nil, err
	}
	line, err := lineOf(f, key)
	if err != nil {
		return nil, err
	}
	condNode, err := required(val, f, "condition")
	if err != nil {
		return nil, err
	}
	thenNode, err := required(val, f, "then")
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStatement{Token: token.New(token.IF, line)}
	if stmt.Condition, err = decodeExpression(condNode); err != nil {
		return nil, err
	}
	if stmt.Then, err = decodeStatement(thenNode); err != nil {
		return nil, err
	}
	if elseNode, ok := f["else"]; ok {
		if stmt.Else, err = decodeStatement(elseNode); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}
