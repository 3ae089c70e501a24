/*
File    : loxy/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the variable-binding chain that backs
// lexical scoping at runtime: one Environment per block, each holding a
// pointer to the Environment that encloses it. Environments are shared by
// pointer, never copied, so a closure that captures one observes every
// later mutation made through any other reference to the same chain.
package environment

import (
	"fmt"

	"github.com/akashmaji946/loxy/value"
)

// Environment is a single lexical scope's variable table, chained to its
// enclosing scope.
type Environment struct {
	values    map[string]value.Value
	enclosing *Environment
}

// New creates a top-level (global) environment with no enclosing scope.
func New() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// NewEnclosed creates a scope nested directly inside enclosing.
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), enclosing: enclosing}
}

// Define binds name to v in this scope, overwriting any existing binding
// of the same name in this same scope (redeclaration is legal at runtime;
// the resolver only rejects it statically within a single block).
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get looks up name by walking the enclosing chain outward from e. Used
// for references the resolver left untagged (treated as global).
func (e *Environment) Get(name string) (value.Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name]; ok {
			return v, nil
		}
	}
	return value.NilValue, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign walks the enclosing chain outward from e looking for an existing
// binding of name and overwrites it in place. Assigning to a name with no
// existing binding anywhere in the chain is a runtime error — Lox has no
// implicit global creation on assignment.
func (e *Environment) Assign(name string, v value.Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name]; ok {
			env.values[name] = v
			return nil
		}
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}

// ancestor walks exactly distance hops outward from e. Only ever called
// with a distance the resolver computed from a scope stack that actually
// contained this many enclosing scopes, so running off the end of the
// chain indicates a resolver/interpreter mismatch.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name from the scope exactly distance hops outward from e,
// per the resolver's side-table. Bypasses any chain walk.
func (e *Environment) GetAt(distance int, name string) value.Value {
	return e.ancestor(distance).values[name]
}

// AssignAt writes name in the scope exactly distance hops outward from e,
// per the resolver's side-table. Bypasses any chain walk.
func (e *Environment) AssignAt(distance int, name string, v value.Value) {
	e.ancestor(distance).values[name] = v
}

// Enclosing returns the scope directly enclosing e, or nil at the global
// scope.
func (e *Environment) Enclosing() *Environment {
	return e.enclosing
}
