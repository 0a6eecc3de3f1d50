package evaluator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/config"
	"github.com/funvibe/lox/internal/token"
)

type Evaluator struct {
	// Context for cancellation, checked before every statement
	Context context.Context

	// Out receives print output, Err receives runtime error reports.
	Out io.Writer
	Err io.Writer

	// MaxDepth bounds the nesting of statements and expressions.
	MaxDepth int

	// Globals lives as long as the evaluator; repeated Interpret calls share it.
	Globals *Environment

	// env is the innermost active scope. Only enterScope changes it.
	env *Environment

	depth int
}

func New() *Evaluator {
	globals := NewEnvironment()
	return &Evaluator{
		Out:      os.Stdout,
		Err:      os.Stderr,
		MaxDepth: config.DefaultMaxDepth,
		Globals:  globals,
		env:      globals,
	}
}

// Interpret runs statements in order. The first runtime error is written to
// Err and the remaining statements are skipped; the evaluator stays usable.
func (e *Evaluator) Interpret(statements []ast.Statement) {
	if err := e.Execute(statements); err != nil {
		fmt.Fprintln(e.Err, FormatRuntimeError(err))
	}
}

// Execute is Interpret without the reporting: the error is returned instead.
func (e *Evaluator) Execute(statements []ast.Statement) error {
	for _, stmt := range statements {
		if err := e.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate evaluates a single expression in the current scope.
func (e *Evaluator) Evaluate(expr ast.Expression) (Value, error) {
	return e.eval(expr)
}

// Environment returns the innermost active scope.
func (e *Evaluator) Environment() *Environment {
	return e.env
}

// enterScope makes a fresh child of the current scope active and returns the
// function that restores the previous one:
//
//	defer e.enterScope()()
func (e *Evaluator) enterScope() (release func()) {
	previous := e.env
	e.env = NewEnclosedEnvironment(previous)
	return func() {
		e.env = previous
	}
}

func (e *Evaluator) descend(tok token.Token) error {
	e.depth++
	if e.MaxDepth > 0 && e.depth > e.MaxDepth {
		return newError(DepthExceeded, tok, "Maximum nesting depth of %d exceeded.", e.MaxDepth)
	}
	return nil
}

func (e *Evaluator) ascend() {
	e.depth--
}

func (e *Evaluator) checkCancelled(tok token.Token) error {
	if e.Context == nil {
		return nil
	}
	select {
	case <-e.Context.Done():
		return newError(Cancelled, tok, "Execution cancelled: %v.", e.Context.Err())
	default:
		return nil
	}
}

func (e *Evaluator) execute(stmt ast.Statement) error {
	tok := stmt.GetToken()
	defer e.ascend()
	if err := e.descend(tok); err != nil {
		return err
	}
	if err := e.checkCancelled(tok); err != nil {
		return err
	}

	switch stmt := stmt.(type) {
	case *ast.ExpressionStatement:
		_, err := e.eval(stmt.Expression)
		return err
	case *ast.PrintStatement:
		return e.evalPrintStatement(stmt)
	case *ast.VarStatement:
		return e.evalVarStatement(stmt)
	case *ast.IfStatement:
		return e.evalIfStatement(stmt)
	case *ast.BlockStatement:
		return e.evalBlockStatement(stmt)
	default:
		panic(fmt.Sprintf("evaluator: unhandled statement %T", stmt))
	}
}

func (e *Evaluator) eval(expr ast.Expression) (Value, error) {
	tok := expr.GetToken()
	defer e.ascend()
	if err := e.descend(tok); err != nil {
		return nil, err
	}

	switch expr := expr.(type) {
	case *ast.Literal:
		val, ok := FromLiteral(expr.Value)
		if !ok {
			return nil, newError(TypeError, tok, "Unsupported literal of type %T.", expr.Value)
		}
		return val, nil
	case *ast.Grouping:
		return e.eval(expr.Expression)
	case *ast.Variable:
		return e.env.Get(expr.Name)
	case *ast.Assign:
		val, err := e.eval(expr.Value)
		if err != nil {
			return nil, err
		}
		if err := e.env.Assign(expr.Name, val); err != nil {
			return nil, err
		}
		return val, nil
	case *ast.Unary:
		right, err := e.eval(expr.Right)
		if err != nil {
			return nil, err
		}
		return e.evalUnaryExpression(expr.Operator, right)
	case *ast.Logical:
		return e.evalLogicalExpression(expr)
	case *ast.Binary:
		left, err := e.eval(expr.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.eval(expr.Right)
		if err != nil {
			return nil, err
		}
		return e.evalBinaryExpression(expr.Operator, left, right)
	default:
		panic(fmt.Sprintf("evaluator: unhandled expression %T", expr))
	}
}

// FormatRuntimeError renders err as "<message>\n[line <n>]". Errors that are
// not runtime errors are rendered with their own message.
func FormatRuntimeError(err error) string {
	var rtErr *RuntimeError
	if errors.As(err, &rtErr) {
		return rtErr.Error()
	}
	return err.Error()
}
