package interpreter

import (
	"maps"
	"slices"
)

// Binding is a variable and its value.
type Binding struct {
	Name  string
	Value int64
}

// Environment is the flat table of variables of one run.
type Environment struct {
	vars map[string]int64
}

func newEnvironment() *Environment {
	return &Environment{vars: map[string]int64{}}
}

func (e *Environment) Get(name string) (int64, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set binds name to v, overwriting any previous value.
func (e *Environment) Set(name string, v int64) {
	e.vars[name] = v
}

func (e *Environment) Len() int { return len(e.vars) }

// Names returns the bound names, sorted.
func (e *Environment) Names() []string {
	return slices.Sorted(maps.Keys(e.vars))
}

// Bindings returns every binding, sorted by name.
func (e *Environment) Bindings() []Binding {
	names := e.Names()
	out := make([]Binding, 0, len(names))
	for _, name := range names {
		out = append(out, Binding{Name: name, Value: e.vars[name]})
	}
	return out
}
