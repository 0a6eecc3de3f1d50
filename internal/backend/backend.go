// Package backend runs loaded programs.
package backend

import (
	"github.com/funvibe/lox/internal/pipeline"
)

// Backend is the interface for execution backends
type Backend interface {
	// Run executes the program in ctx and returns the runtime error, if any.
	Run(ctx *pipeline.PipelineContext) error

	// Name returns the backend name for display
	Name() string
}
