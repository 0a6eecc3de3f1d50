package evaluator

import (
	"fmt"

	"github.com/funvibe/lox/internal/token"
)

// ErrorKind classifies runtime errors. Kinds are errors themselves so callers
// can write errors.Is(err, evaluator.DivisionByZero).
type ErrorKind int

const (
	TypeError ErrorKind = iota + 1
	DivisionByZero
	UndefinedVariable
	Cancelled
	DepthExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case TypeError:
		return "TypeError"
	case DivisionByZero:
		return "DivisionByZero"
	case UndefinedVariable:
		return "UndefinedVariable"
	case Cancelled:
		return "Cancelled"
	case DepthExceeded:
		return "DepthExceeded"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) Error() string { return k.String() }

// RuntimeError aborts the statement list being interpreted.
type RuntimeError struct {
	Kind    ErrorKind
	Token   token.Token
	Message string
}

// Error renders the message followed by the source line, the form
// Interpret writes to its error stream.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

func (e *RuntimeError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// Line is the source line of the offending token.
func (e *RuntimeError) Line() int { return e.Token.Line }

func newError(kind ErrorKind, tok token.Token, format string, a ...any) *RuntimeError {
	return &RuntimeError{
		Kind:    kind,
		Token:   tok,
		Message: fmt.Sprintf(format, a...),
	}
}
