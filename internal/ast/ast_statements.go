package ast

import (
	"github.com/funvibe/lox/internal/token"
)

// ExpressionStatement is a statement that consists of a single expression.
type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()        {}
func (es *ExpressionStatement) TokenLiteral() string  { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token { return es.Token }

// PrintStatement writes the display form of its expression.
type PrintStatement struct {
	Token      token.Token // print
	Expression Expression
}

func (ps *PrintStatement) statementNode()        {}
func (ps *PrintStatement) TokenLiteral() string  { return ps.Token.Lexeme }
func (ps *PrintStatement) GetToken() token.Token { return ps.Token }

// VarStatement declares a variable in the current scope.
// var name = initializer;  Initializer is nil for `var name;`
type VarStatement struct {
	Name        token.Token
	Initializer Expression
}

func (vs *VarStatement) statementNode()        {}
func (vs *VarStatement) TokenLiteral() string  { return vs.Name.Lexeme }
func (vs *VarStatement) GetToken() token.Token { return vs.Name }

// IfStatement: if (condition) then else alternative. Else may be nil.
type IfStatement struct {
	Token     token.Token // if
	Condition Expression
	Then      Statement
	Else      Statement
}

func (is *IfStatement) statementNode()        {}
func (is *IfStatement) TokenLiteral() string  { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token { return is.Token }

// BlockStatement represents a list of statements within curly braces.
// Each block runs in its own scope.
type BlockStatement struct {
	Token      token.Token // {
	Statements []Statement
}

func (bs *BlockStatement) statementNode()        {}
func (bs *BlockStatement) TokenLiteral() string  { return bs.Token.Lexeme }
func (bs *BlockStatement) GetToken() token.Token { return bs.Token }
