package evaluator

import (
	"sort"

	"github.com/funvibe/lox/internal/token"
)

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Value)}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Environment is one scope. Lookups walk outward through outer until a
// binding is found; nothing is cached.
type Environment struct {
	store map[string]Value
	outer *Environment
}

// Define binds name in this scope, replacing any previous binding here and
// shadowing bindings of enclosing scopes.
func (e *Environment) Define(name string, val Value) {
	e.store[name] = val
}

func (e *Environment) Get(name token.Token) (Value, error) {
	for env := e; env != nil; env = env.outer {
		if val, ok := env.store[name.Lexeme]; ok {
			return val, nil
		}
	}
	return nil, undefinedVariable(name)
}

// Assign updates the nearest existing binding. It never creates one.
func (e *Environment) Assign(name token.Token, val Value) error {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.store[name.Lexeme]; ok {
			env.store[name.Lexeme] = val
			return nil
		}
	}
	return undefinedVariable(name)
}

func (e *Environment) Outer() *Environment {
	return e.outer
}

// Depth is the number of scopes in the chain, 1 for a global environment.
func (e *Environment) Depth() int {
	n := 0
	for env := e; env != nil; env = env.outer {
		n++
	}
	return n
}

// Names returns the names bound directly in this scope, sorted.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for k := range e.store {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func undefinedVariable(name token.Token) *RuntimeError {
	return newError(UndefinedVariable, name, "Undefined variable '%s'.", name.Lexeme)
}
