package evaluator

import (
	"github.com/funvibe/lox/internal/ast"
)

func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement) error {
	defer e.enterScope()()

	for _, stmt := range block.Statements {
		if err := e.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) evalIfStatement(node *ast.IfStatement) error {
	condition, err := e.eval(node.Condition)
	if err != nil {
		return err
	}
	if isTruthy(condition) {
		return e.execute(node.Then)
	}
	if node.Else != nil {
		return e.execute(node.Else)
	}
	return nil
}
