package pipeline

import (
	"github.com/funvibe/lox/internal/ast"
)

// Processor is one stage of a pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext { return f(ctx) }

// PipelineContext carries one program through the stages.
type PipelineContext struct {
	FilePath string
	Source   []byte
	Program  *ast.Program

	// Errors collects load failures.
	Errors []error
	// RuntimeError is the error that stopped execution, if any.
	RuntimeError error
}

func NewPipelineContext(filePath string, source []byte) *PipelineContext {
	return &PipelineContext{FilePath: filePath, Source: source}
}

// Failed reports whether any stage recorded an error.
func (c *PipelineContext) Failed() bool {
	return len(c.Errors) > 0 || c.RuntimeError != nil
}
