package lisp

import (
	"errors"
	"fmt"

	"github.com/xiam/lisp/ast"
)

// ErrUnbound is returned when assigning to a name that has no binding in any
// scope.
var ErrUnbound = errors.New("unbound symbol")

// Environment maps symbol names to values and chains to an outer
// environment. The global environment has no outer.
type Environment struct {
	outer   *Environment
	symbols map[string]*ast.Value
}

// NewEnvironment creates an empty environment chained to outer.
func NewEnvironment(outer *Environment) *Environment {
	return &Environment{
		outer:   outer,
		symbols: make(map[string]*ast.Value),
	}
}

// Outer returns the enclosing environment, nil for the global one.
func (env *Environment) Outer() *Environment {
	return env.outer
}

// Define binds name in this environment, replacing any previous local
// binding.
func (env *Environment) Define(name string, value *ast.Value) {
	env.symbols[name] = value
}

// Lookup resolves name in this environment and then in the outer ones.
func (env *Environment) Lookup(name string) (*ast.Value, bool) {
	for e := env; e != nil; e = e.outer {
		if value, ok := e.symbols[name]; ok {
			return value, true
		}
	}
	return nil, false
}

// Update rebinds name. An existing local binding is overwritten in place.
// Otherwise, when currentScopeOnly is set the name is added to this
// environment; when it isn't the update is delegated to the outer
// environment, failing with ErrUnbound once there is none left.
func (env *Environment) Update(name string, value *ast.Value, currentScopeOnly bool) error {
	if _, ok := env.symbols[name]; ok {
		env.symbols[name] = value
		return nil
	}
	if currentScopeOnly {
		env.symbols[name] = value
		return nil
	}
	if env.outer != nil {
		return env.outer.Update(name, value, false)
	}
	return fmt.Errorf("%w: %q", ErrUnbound, name)
}

var _ ast.Scope = (*Environment)(nil)
