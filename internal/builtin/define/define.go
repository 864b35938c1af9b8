// Copyright (c) present lispy contributors
//
// lispy is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2

// Package define implements spec.md §4.3/§4.5's binding builtins: global
// `def`, local `=`, and the `\` lambda constructor. Grounded on
// sxpf/builtins/define/define.go's DefineS/DefineExpr split between global
// and local scope.
package define

import (
	"github.com/gopherlisp/lispy/internal/env"
	"github.com/gopherlisp/lispy/internal/value"
)

// Register binds the definition builtins into e.
func Register(e *env.Environment) {
	e.Def("def", value.MakeBuiltin("def", defFn))
	e.Def("=", value.MakeBuiltin("=", putFn))
	e.Def("\\", value.MakeBuiltin("\\", lambdaFn))
}

func bindAll(callerEnv value.Env, args *value.QExpr, global bool) value.Value {
	if len(args.Children) < 1 {
		return value.MakeErr("Function passed no arguments.")
	}
	names, ok := args.Children[0].(*value.QExpr)
	if !ok {
		return value.MakeErr("Function passed incorrect type for argument 0.")
	}
	for _, n := range names.Children {
		if _, ok := n.(value.Sym); !ok {
			return value.MakeErr("Function cannot define non-symbol.")
		}
	}
	vals := args.Children[1:]
	if len(names.Children) != len(vals) {
		return value.MakeErr("Function passed too many arguments for symbols. Got %d, Expected %d.", len(vals), len(names.Children))
	}
	e, ok := callerEnv.(*env.Environment)
	if !ok {
		return value.MakeErr("internal error: environment of unexpected type")
	}
	for i, n := range names.Children {
		sym := n.(value.Sym)
		if global {
			e.Def(sym, vals[i])
		} else {
			e.Put(sym, vals[i])
		}
	}
	return &value.QExpr{}
}

func defFn(callerEnv value.Env, args *value.QExpr) value.Value { return bindAll(callerEnv, args, true) }
func putFn(callerEnv value.Env, args *value.QExpr) value.Value { return bindAll(callerEnv, args, false) }

func lambdaFn(callerEnv value.Env, args *value.QExpr) value.Value {
	if len(args.Children) != 2 {
		return value.MakeErr("Function '\\' passed %d arguments, expected 2.", len(args.Children))
	}
	formals, ok1 := args.Children[0].(*value.QExpr)
	body, ok2 := args.Children[1].(*value.QExpr)
	if !ok1 || !ok2 {
		return value.MakeErr("Function '\\' passed incorrect type.")
	}
	for _, f := range formals.Children {
		if _, ok := f.(value.Sym); !ok {
			return value.MakeErr("Cannot define non-symbol. Got %T, Expected Symbol.", f)
		}
	}
	return value.MakeLambda(formals, body, callerEnv)
}
