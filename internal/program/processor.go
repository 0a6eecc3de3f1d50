package program

import (
	"fmt"
	"os"

	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/pipeline"
)

// LoadProcessor decodes ctx.Source (read from ctx.FilePath when empty)
// into ctx.Program.
type LoadProcessor struct{}

func (lp *LoadProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Source == nil && ctx.FilePath != "" {
		data, err := os.ReadFile(ctx.FilePath)
		if err != nil {
			ctx.Errors = append(ctx.Errors, fmt.Errorf("reading program %s: %w", ctx.FilePath, err))
			return ctx
		}
		ctx.Source = data
	}

	stmts, err := Decode(ctx.Source)
	if err != nil {
		if ctx.FilePath != "" {
			err = fmt.Errorf("%s: %w", ctx.FilePath, err)
		}
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Program = &ast.Program{File: ctx.FilePath, Statements: stmts}
	return ctx
}
