// Copyright (c) present lispy contributors
//
// lispy is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2

// Package env implements the lexical Environment of spec.md §4.3: a parent
// chain of symbol-to-value bindings. Generalized from sxpf.Environment
// (root/child split, Bind/Lookup/Unbind/Bindings) to the value.Env surface
// the evaluator and builtins share; the root environment's mutex is dropped
// since the system is single-threaded (spec.md §5).
package env

import (
	"sort"

	"github.com/gopherlisp/lispy/internal/value"
)

// Environment is the concrete lexical environment, implementing value.Env.
type Environment struct {
	parent *Environment
	vars   map[value.Sym]value.Value
}

// NewRoot creates a new environment with no parent.
func NewRoot() *Environment {
	return &Environment{vars: make(map[value.Sym]value.Value, 64)}
}

// NewChild creates a child environment of parent, per §4.3's lambda-call
// frame construction.
func NewChild(parent *Environment) *Environment {
	return &Environment{parent: parent, vars: make(map[value.Sym]value.Value, 8)}
}

// Parent returns the parent environment, or nil for the root.
func (e *Environment) Parent() value.Env {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// SetParent reparents e, used when a lambda's captured environment is
// spliced onto the caller's frame at call time (§4.5).
func (e *Environment) SetParent(p *Environment) { e.parent = p }

// Get resolves sym by walking the parent chain and returns a deep copy of
// the bound value (per §3's copy-on-read discipline), or an Err value if
// unbound.
func (e *Environment) Get(sym value.Sym) value.Value {
	for cur := e; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[sym]; ok {
			return v.Copy()
		}
	}
	return value.MakeErr("Unbound Symbol '%s'.", string(sym))
}

// Put creates or overwrites a binding in this environment only (local
// define, "="), after deep-copying v.
func (e *Environment) Put(sym value.Sym, v value.Value) {
	e.vars[sym] = v.Copy()
}

// Def walks to the outermost (root) environment and binds there (global
// define), per §4.3.
func (e *Environment) Def(sym value.Sym, v value.Value) {
	cur := e
	for cur.parent != nil {
		cur = cur.parent
	}
	cur.vars[sym] = v.Copy()
}

// Copy returns a shallow copy of this environment sharing the same parent,
// used by the applier to build each call's frame from a lambda's captured
// environment.
func (e *Environment) Copy() value.Env {
	cp := &Environment{parent: e.parent, vars: make(map[value.Sym]value.Value, len(e.vars))}
	for k, v := range e.vars {
		cp.vars[k] = v
	}
	return cp
}

// Names returns the locally bound symbols in sorted order, used by
// `printenv` for deterministic output.
func (e *Environment) Names() []value.Sym {
	names := make([]value.Sym, 0, len(e.vars))
	for k := range e.vars {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Lookup reports the locally (non-inherited) bound value, mirroring
// sxpf.Environment.Lookup's no-parent-delegation contract; used by
// `printenv`.
func (e *Environment) Lookup(sym value.Sym) (value.Value, bool) {
	v, ok := e.vars[sym]
	return v, ok
}
