package backend

import (
	"fmt"

	"github.com/funvibe/lox/internal/evaluator"
	"github.com/funvibe/lox/internal/pipeline"
)

// TreeWalkBackend runs programs on one long-lived Evaluator, so globals
// defined by one program are visible to the next.
type TreeWalkBackend struct {
	Evaluator *evaluator.Evaluator
}

// NewTreeWalk creates a new tree-walk backend
func NewTreeWalk(eval *evaluator.Evaluator) *TreeWalkBackend {
	if eval == nil {
		eval = evaluator.New()
	}
	return &TreeWalkBackend{Evaluator: eval}
}

// Run executes the program using tree-walk interpretation
func (b *TreeWalkBackend) Run(ctx *pipeline.PipelineContext) error {
	if ctx.Program == nil {
		return fmt.Errorf("no program to execute")
	}
	return b.Evaluator.Execute(ctx.Program.Statements)
}

func (b *TreeWalkBackend) Name() string { return "tree-walk" }
