package evaluator

import (
	"fmt"

	"github.com/funvibe/lox/internal/ast"
)

func (e *Evaluator) evalVarStatement(node *ast.VarStatement) error {
	var val Value = NIL
	if node.Initializer != nil {
		v, err := e.eval(node.Initializer)
		if err != nil {
			return err
		}
		val = v
	}
	e.env.Define(node.Name.Lexeme, val)
	return nil
}

func (e *Evaluator) evalPrintStatement(node *ast.PrintStatement) error {
	val, err := e.eval(node.Expression)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(e.Out, Stringify(val))
	return nil
}
