package config

import "strings"

// SourceFileExt is the extension of serialized program files.
const SourceFileExt = ".lox.yaml"

// SourceFileExtensions are all recognized program file extensions
var SourceFileExtensions = []string{".lox.yaml", ".lox.yml"}

// SourceExt returns the program extension path ends with, or "" if none.
func SourceExt(path string) string {
	for _, ext := range SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return ext
		}
	}
	return ""
}

// ConfigFileNames are searched for, in order, by FindConfig.
var ConfigFileNames = []string{"lox.yaml", "lox.yml"}

// DefaultMaxDepth bounds statement/expression nesting during evaluation.
const DefaultMaxDepth = 10000

// Exit codes used by the command-line driver (sysexits.h).
const (
	ExitUsage        = 64
	ExitDataErr      = 65
	ExitRuntimeError = 70
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
