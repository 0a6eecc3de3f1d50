package token

import "fmt"

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENTIFIER = "IDENTIFIER"
	STRING     = "STRING"
	NUMBER     = "NUMBER"

	// Operators
	MINUS         = "-"
	PLUS          = "+"
	SLASH         = "/"
	STAR          = "*"
	BANG          = "!"
	BANG_EQUAL    = "!="
	EQUAL         = "="
	EQUAL_EQUAL   = "=="
	GREATER       = ">"
	GREATER_EQUAL = ">="
	LESS          = "<"
	LESS_EQUAL    = "<="

	// Delimiters
	LPAREN    = "("
	RPAREN    = ")"
	LBRACE    = "{"
	RBRACE    = "}"
	SEMICOLON = ";"

	// Keywords
	AND   = "and"
	OR    = "or"
	TRUE  = "true"
	FALSE = "false"
	NIL   = "nil"
	VAR   = "var"
	PRINT = "print"
	IF    = "if"
	ELSE  = "else"
)

// Token is what the lexer hands over for every lexeme. Line is 1-based and
// is the only position the evaluator reports.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Type, t.Lexeme, t.Literal)
}

var keywords = map[string]TokenType{
	"and":   AND,
	"or":    OR,
	"true":  TRUE,
	"false": FALSE,
	"nil":   NIL,
	"var":   VAR,
	"print": PRINT,
	"if":    IF,
	"else":  ELSE,
}

// LookupIdent returns the keyword type for ident, or IDENTIFIER.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENTIFIER
}

var operators = map[string]TokenType{
	MINUS:         MINUS,
	PLUS:          PLUS,
	SLASH:         SLASH,
	STAR:          STAR,
	BANG:          BANG,
	BANG_EQUAL:    BANG_EQUAL,
	EQUAL:         EQUAL,
	EQUAL_EQUAL:   EQUAL_EQUAL,
	GREATER:       GREATER,
	GREATER_EQUAL: GREATER_EQUAL,
	LESS:          LESS,
	LESS_EQUAL:    LESS_EQUAL,
	AND:           AND,
	OR:            OR,
}

// LookupOperator maps an operator lexeme ("+", "<=", "and", ...) to its type.
func LookupOperator(lexeme string) (TokenType, bool) {
	t, ok := operators[lexeme]
	return t, ok
}

// New builds a token whose lexeme is the type's own spelling.
func New(t TokenType, line int) Token {
	return Token{Type: t, Lexeme: string(t), Line: line}
}

// Identifier builds an IDENTIFIER token.
func Identifier(name string, line int) Token {
	return Token{Type: IDENTIFIER, Lexeme: name, Line: line}
}
