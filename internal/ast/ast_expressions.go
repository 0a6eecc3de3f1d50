package ast

import (
	"github.com/funvibe/lox/internal/token"
)

// Literal holds a constant taken from the lexer.
// Value is one of float64, string, bool or nil.
type Literal struct {
	Token token.Token
	Value any
}

func (l *Literal) expressionNode()       {}
func (l *Literal) TokenLiteral() string  { return l.Token.Lexeme }
func (l *Literal) GetToken() token.Token { return l.Token }

// Grouping is a parenthesized expression, e.g. (a + b)
type Grouping struct {
	Token      token.Token // The '(' token
	Expression Expression
}

func (g *Grouping) expressionNode()       {}
func (g *Grouping) TokenLiteral() string  { return g.Token.Lexeme }
func (g *Grouping) GetToken() token.Token { return g.Token }

// Unary represents -x or !x
type Unary struct {
	Operator token.Token
	Right    Expression
}

func (u *Unary) expressionNode()       {}
func (u *Unary) TokenLiteral() string  { return u.Operator.Lexeme }
func (u *Unary) GetToken() token.Token { return u.Operator }

// Binary represents arithmetic, comparison and equality operators.
type Binary struct {
	Left     Expression
	Operator token.Token
	Right    Expression
}

func (b *Binary) expressionNode()       {}
func (b *Binary) TokenLiteral() string  { return b.Operator.Lexeme }
func (b *Binary) GetToken() token.Token { return b.Operator }

// Logical represents `and` / `or`. Unlike Binary, the right side may never run.
type Logical struct {
	Left     Expression
	Operator token.Token
	Right    Expression
}

func (l *Logical) expressionNode()       {}
func (l *Logical) TokenLiteral() string  { return l.Operator.Lexeme }
func (l *Logical) GetToken() token.Token { return l.Operator }

// Variable is a read of a named binding.
type Variable struct {
	Name token.Token
}

func (v *Variable) expressionNode()       {}
func (v *Variable) TokenLiteral() string  { return v.Name.Lexeme }
func (v *Variable) GetToken() token.Token { return v.Name }

// Assign writes to an existing binding: name = value
type Assign struct {
	Name  token.Token
	Value Expression
}

func (a *Assign) expressionNode()       {}
func (a *Assign) TokenLiteral() string  { return a.Name.Lexeme }
func (a *Assign) GetToken() token.Token { return a.Name }
