package ast

import (
	"github.com/funvibe/lox/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its primary token.
// This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenProvider
	TokenLiteral() string
}

// Statement is a Node that represents a statement.
// The set of statements is closed: only this package can add one.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that represents an expression.
// The set of expressions is closed: only this package can add one.
type Expression interface {
	Node
	expressionNode()
}

// Program is the ordered statement list handed to the evaluator.
type Program struct {
	File       string // Source file path
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}
