// Command lox runs serialized programs (see internal/program) on the
// tree-walking evaluator.
//
//	lox [-config lox.yaml] [-v] file.lox.yaml...
//
// Program files end in .lox.yaml or .lox.yml.
//
// All files share one evaluator: globals declared by one file are visible to
// the files after it. A runtime error stops only the file it occurred in.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/funvibe/lox/internal/backend"
	"github.com/funvibe/lox/internal/config"
	"github.com/funvibe/lox/internal/evaluator"
	"github.com/funvibe/lox/internal/pipeline"
	"github.com/funvibe/lox/internal/program"
)

const (
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

func main() {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r) // Re-panic to get stack trace
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to lox.yaml (default: search upwards from the working directory)")
	verbose := fs.Bool("v", false, "trace progress to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: lox [-config lox.yaml] [-v] file%s...\n", config.SourceFileExt)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return config.ExitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return config.ExitUsage
	}
	for _, path := range fs.Args() {
		if config.SourceExt(path) == "" {
			fmt.Fprintf(stderr, "Error: %s: not a program file (want %s)\n",
				path, strings.Join(config.SourceFileExtensions, " or "))
			return config.ExitUsage
		}
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return config.ExitUsage
	}
	trace := cfg.Trace || *verbose

	var errFile *os.File
	if f, ok := stderr.(*os.File); ok {
		errFile = f
	}
	useColor := cfg.UseColor(errFile)

	eval := evaluator.New()
	eval.Out = stdout
	eval.Err = stderr
	eval.MaxDepth = cfg.MaxDepth

	p := pipeline.New(
		&program.LoadProcessor{},
		backend.NewExecutionProcessor(backend.NewTreeWalk(eval)),
	)

	exitCode := 0
	for _, path := range fs.Args() {
		if trace {
			fmt.Fprintf(stderr, "lox: running %s\n", path)
		}
		ctx := p.Run(pipeline.NewPipelineContext(path, nil))

		for _, err := range ctx.Errors {
			report(stderr, useColor, err.Error())
			exitCode = max(exitCode, config.ExitDataErr)
		}
		if ctx.RuntimeError != nil {
			report(stderr, useColor, evaluator.FormatRuntimeError(ctx.RuntimeError))
			exitCode = max(exitCode, config.ExitRuntimeError)
		}
		if trace && ctx.Program != nil {
			fmt.Fprintf(stderr, "lox: %s: %d statements, globals: %v\n",
				path, len(ctx.Program.Statements), eval.Globals.Names())
		}
	}
	return exitCode
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfig(path)
	}
	found, err := config.FindConfig(".")
	if err != nil {
		return nil, err
	}
	return config.Load(found)
}

func report(w io.Writer, color bool, msg string) {
	if color {
		fmt.Fprintf(w, "%s%s%s\n", colorRed, msg, colorReset)
		return
	}
	fmt.Fprintln(w, msg)
}
